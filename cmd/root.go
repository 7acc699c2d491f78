package cmd

import (
	"ctxport/pkg/export"
	"ctxport/pkg/logging"
	"ctxport/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	debugFlag     bool
	outputFlag    string
	maxFileSizeKB int
)

// RootCmd is the base command; invoked without subcommands it runs an export.
var RootCmd = &cobra.Command{
	Use:   "ctxport [directory]",
	Short: "Export codebase context to markdown for AI prompts",
	Long: `ctxport walks a directory tree, filters files through layered
configuration (built-in defaults, a global user config, .ctxport.json files
found between the filesystem root and the export directory, and a legacy
context.ignore file) and concatenates the selected files into a single
markdown document, delivered to the clipboard or a file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugFlag {
			l, err := logging.Setup(true, "ctxport", version.Get().Version)
			if err != nil {
				return err
			}
			logger = l
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return export.New(dir, outputFlag, maxFileSizeKB, logger).Run(cmd.Context())
	},
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	RootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: copy to clipboard)")
	RootCmd.Flags().IntVar(&maxFileSizeKB, "max-file-size-kb", 1024, "Skip files larger than this size in KB (0 disables the limit)")
}
