package cmd

import (
	"fmt"

	"ctxport/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initCmd writes a starter configuration file: .ctxport.json in the current
// directory, or the global per-user config with --global.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		global, err := cmd.Flags().GetBool("global")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		path := config.DirConfigName
		if global {
			path, err = config.GlobalConfigFile()
			if err != nil {
				return err
			}
		}

		if err := config.WriteExample(path); err != nil {
			return err
		}
		logger.Info("Created example configuration", zap.String("path", path))
		fmt.Printf("Created example configuration at: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("global", false, "Write the global per-user config instead of a local one")
	RootCmd.AddCommand(initCmd)
}
