package export

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ctxport/pkg/config"
	"ctxport/pkg/ignore"
	"ctxport/pkg/language"

	"go.uber.org/zap"
)

// FileEntry is one file selected for export.
type FileEntry struct {
	RelPath  string // path relative to the export root, always '/'-separated
	AbsPath  string
	Language string
}

// Configuration artifacts are never part of the exported context.
var alwaysSkip = map[string]bool{
	config.DirConfigName:    true,
	config.GlobalConfigName: true,
	config.LegacyIgnoreName: true,
}

// Walker traverses the export root depth-first in sorted order, consulting
// the ignore matcher and language resolver per entry. The traversal is lazy:
// entries are handed to the callback as they are discovered, and ignored
// directories are pruned without being descended into.
type Walker struct {
	root          string
	matcher       *ignore.Matcher
	resolver      *language.Resolver
	logger        *zap.Logger
	maxFileSizeKB int
}

// NewWalker builds a Walker. maxFileSizeKB of 0 disables the size guard.
func NewWalker(root string, matcher *ignore.Matcher, resolver *language.Resolver, maxFileSizeKB int, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		root:          root,
		matcher:       matcher,
		resolver:      resolver,
		logger:        logger,
		maxFileSizeKB: maxFileSizeKB,
	}
}

// Walk yields every exportable file under the root. Symlinked directories
// are followed by canonical path; a canonical path already on the current
// descent stack is skipped, so link cycles terminate. Returning a non-nil
// error from fn stops the walk.
func (w *Walker) Walk(fn func(FileEntry) error) error {
	rootAbs, err := filepath.Abs(w.root)
	if err != nil {
		return fmt.Errorf("resolve root %s: %w", w.root, err)
	}
	canon, err := filepath.EvalSymlinks(rootAbs)
	if err != nil {
		return fmt.Errorf("resolve root %s: %w", w.root, err)
	}
	onStack := map[string]bool{canon: true}
	return w.walkDir(rootAbs, "", onStack, fn)
}

// ExportableFiles collects the walk into a slice, in traversal order.
func (w *Walker) ExportableFiles() ([]FileEntry, error) {
	var entries []FileEntry
	err := w.Walk(func(e FileEntry) error {
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

func (w *Walker) walkDir(dir, rel string, onStack map[string]bool, fn func(FileEntry) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// A forbidden subtree is expected in heterogeneous trees and must
		// not abort the whole run.
		w.logger.Warn("Skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		childAbs := filepath.Join(dir, name)

		isDir := entry.IsDir()
		isSymlink := entry.Type()&fs.ModeSymlink != 0
		if isSymlink {
			info, err := os.Stat(childAbs)
			if err != nil {
				w.logger.Warn("Skipping broken symlink", zap.String("path", childRel), zap.Error(err))
				continue
			}
			isDir = info.IsDir()
		}

		if isDir {
			if w.matcher.Match(childRel, true) {
				w.logger.Debug("Pruned ignored directory", zap.String("path", childRel))
				continue
			}
			canon, err := filepath.EvalSymlinks(childAbs)
			if err != nil {
				w.logger.Warn("Skipping unresolvable directory", zap.String("path", childRel), zap.Error(err))
				continue
			}
			if onStack[canon] {
				w.logger.Debug("Skipping directory cycle", zap.String("path", childRel), zap.String("target", canon))
				continue
			}
			onStack[canon] = true
			err = w.walkDir(childAbs, childRel, onStack, fn)
			delete(onStack, canon)
			if err != nil {
				return err
			}
			continue
		}

		if !isSymlink && !entry.Type().IsRegular() {
			continue // sockets, devices, pipes
		}
		if alwaysSkip[name] {
			continue
		}
		if w.matcher.Match(childRel, false) {
			w.logger.Debug("Skipping ignored file", zap.String("path", childRel))
			continue
		}
		lang, isText := w.resolver.Resolve(name)
		if !isText {
			w.logger.Debug("Skipping non-text file", zap.String("path", childRel))
			continue
		}
		if w.maxFileSizeKB > 0 {
			info, err := os.Stat(childAbs)
			if err != nil {
				w.logger.Warn("Skipping unreadable file", zap.String("path", childRel), zap.Error(err))
				continue
			}
			if info.Size() > int64(w.maxFileSizeKB)*1024 {
				w.logger.Debug("Skipping file over size limit",
					zap.String("path", childRel),
					zap.Int64("sizeBytes", info.Size()),
					zap.Int("maxSizeKB", w.maxFileSizeKB))
				continue
			}
		}

		if err := fn(FileEntry{RelPath: childRel, AbsPath: childAbs, Language: lang}); err != nil {
			return err
		}
	}
	return nil
}
