package export

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// RenderMarkdown formats the selected files into a single markdown document:
// a top-level heading naming the project, then one section per file with its
// relative path as the heading and its content in a fenced code block tagged
// with the resolved language.
//
// A file that cannot be read embeds the error inside its fence instead of
// aborting the export; selection already happened, and one unreadable file
// should not discard the rest of the document.
func RenderMarkdown(projectName string, entries []FileEntry, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Code Context Export: %s\n\n", projectName)

	for _, entry := range entries {
		fmt.Fprintf(&b, "## %s\n\n", entry.RelPath)
		b.WriteString("```")
		b.WriteString(entry.Language)
		b.WriteString("\n")

		data, err := os.ReadFile(entry.AbsPath)
		if err != nil {
			logger.Warn("Failed to read file during rendering",
				zap.String("path", entry.RelPath),
				zap.Error(err))
			fmt.Fprintf(&b, "# Error reading file: %v", err)
		} else {
			b.Write(data)
		}

		b.WriteString("\n```\n\n")
	}

	return b.String()
}
