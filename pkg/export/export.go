// Package export selects the files of a directory tree and renders them into
// a single markdown document for AI prompt consumption.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ctxport/pkg/config"
	"ctxport/pkg/ignore"
	"ctxport/pkg/language"

	"go.uber.org/zap"
)

// Exporter ties configuration loading, file selection, rendering and
// delivery together for one run.
type Exporter struct {
	Directory     string // directory to export
	Output        string // destination file; empty means system clipboard
	MaxFileSizeKB int    // skip files larger than this; 0 disables

	logger *zap.Logger
}

// New constructs an Exporter.
func New(directory, output string, maxFileSizeKB int, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		Directory:     directory,
		Output:        output,
		MaxFileSizeKB: maxFileSizeKB,
		logger:        logger,
	}
}

// ExportableFiles resolves the configuration for root and returns the
// ordered files an export of root would include.
func ExportableFiles(root string, logger *zap.Logger) ([]FileEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve directory %s: %w", root, err)
	}

	cfg, err := config.Load(absRoot, logger)
	if err != nil {
		return nil, err
	}

	matcher := ignore.NewMatcher(cfg.IgnorePatterns, logger)
	resolver := language.NewResolver(&cfg)
	return NewWalker(absRoot, matcher, resolver, 0, logger).ExportableFiles()
}

// Run performs a full export: load configuration, walk the tree, render the
// markdown document and deliver it to the output file or the clipboard.
func (e *Exporter) Run(ctx context.Context) error {
	start := time.Now()

	absDir, err := filepath.Abs(e.Directory)
	if err != nil {
		return fmt.Errorf("resolve directory %s: %w", e.Directory, err)
	}
	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", absDir)
	}

	cfg, err := config.Load(absDir, e.logger)
	if err != nil {
		return err
	}
	e.logger.Debug("Resolved effective configuration",
		zap.Int("ignorePatterns", len(cfg.IgnorePatterns)),
		zap.Int("textExtensions", len(cfg.TextExtensions)))

	matcher := ignore.NewMatcher(cfg.IgnorePatterns, e.logger)
	resolver := language.NewResolver(&cfg)
	walker := NewWalker(absDir, matcher, resolver, e.MaxFileSizeKB, e.logger)

	entries, err := walker.ExportableFiles()
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	if len(entries) == 0 {
		e.logger.Warn("No exportable files found", zap.String("directory", absDir))
	}

	doc := RenderMarkdown(filepath.Base(absDir), entries, e.logger)

	if e.Output != "" {
		if err := os.WriteFile(e.Output, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write output file %s: %w", e.Output, err)
		}
		e.logger.Info("Exported files to output file",
			zap.String("outputFile", e.Output),
			zap.Int("fileCount", len(entries)),
			zap.Duration("elapsed", time.Since(start)))
		return nil
	}

	if err := WriteClipboard(ctx, doc); err != nil {
		// The document is still worth something; dump it to stdout so a
		// shell pipe can pick it up.
		e.logger.Warn("Clipboard copy failed, printing to stdout", zap.Error(err))
		fmt.Println(doc)
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	e.logger.Info("Copied files to clipboard",
		zap.Int("fileCount", len(entries)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
