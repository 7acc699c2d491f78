package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ctxport/pkg/config"
	"ctxport/pkg/ignore"
	"ctxport/pkg/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func newWalker(t *testing.T, root string, extraPatterns []string, maxKB int) *Walker {
	t.Helper()
	cfg := config.Merge([]config.RawConfig{
		config.Default(),
		{IgnorePatterns: extraPatterns},
	})
	matcher := ignore.NewMatcher(cfg.IgnorePatterns, zap.NewNop())
	resolver := language.NewResolver(&cfg)
	return NewWalker(root, matcher, resolver, maxKB, zap.NewNop())
}

func relPaths(entries []FileEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.RelPath
	}
	return paths
}

func TestWalkEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/main.py":         "print('hi')\n",
		"node_modules/lib.js": "module.exports = {}\n",
		"README":              "plain readme\n",
	})

	w := newWalker(t, root, []string{"node_modules/"}, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "src/main.py", entries[0].RelPath)
	assert.Equal(t, "python", entries[0].Language)
	assert.Equal(t, filepath.Join(root, "src", "main.py"), entries[0].AbsPath)
}

func TestWalkDeterministicSortedOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"z.py":     "",
		"a.py":     "",
		"m/one.py": "",
		"b.py":     "",
	})

	w := newWalker(t, root, nil, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py", "b.py", "m/one.py", "z.py"}, relPaths(entries))

	again, err := w.ExportableFiles()
	require.NoError(t, err)
	assert.Equal(t, relPaths(entries), relPaths(again))
}

func TestWalkPrunesIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"build/deep/kept.py": "",
		"src/ok.py":          "",
	})

	w := newWalker(t, root, []string{"build/"}, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"src/ok.py"}, relPaths(entries),
		"files under a pruned directory never surface")
}

func TestWalkSymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/f.py": "",
	})
	if err := os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	w := newWalker(t, root, nil, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"a/f.py"}, relPaths(entries),
		"the cycle link is skipped and no file is yielded twice")
}

func TestWalkFollowsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, map[string]string{"shared.py": ""})
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	w := newWalker(t, root, nil, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"linked/shared.py"}, relPaths(entries))
}

func TestWalkSkipsConfigArtifacts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".ctxport.json":  `{"ignore_patterns": []}`,
		"context.ignore": "*.log\n",
		"kept.py":        "",
	})

	w := newWalker(t, root, nil, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"kept.py"}, relPaths(entries))
}

func TestWalkSizeGuard(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"small.py": "x\n",
		"large.py": strings.Repeat("x", 2048),
	})

	w := newWalker(t, root, nil, 1)
	entries, err := w.ExportableFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"small.py"}, relPaths(entries))
}

func TestWalkSkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"open/ok.py":        "",
		"forbidden/hide.py": "",
	})
	forbidden := filepath.Join(root, "forbidden")
	require.NoError(t, os.Chmod(forbidden, 0000))
	t.Cleanup(func() { _ = os.Chmod(forbidden, 0755) })

	w := newWalker(t, root, nil, 0)
	entries, err := w.ExportableFiles()
	require.NoError(t, err, "a forbidden subtree degrades gracefully")

	assert.Equal(t, []string{"open/ok.py"}, relPaths(entries))
}

func TestWalkCallbackErrorStopsWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py": "",
		"b.py": "",
	})

	w := newWalker(t, root, nil, 0)
	var seen int
	err := w.Walk(func(FileEntry) error {
		seen++
		return os.ErrClosed
	})
	require.ErrorIs(t, err, os.ErrClosed)
	assert.Equal(t, 1, seen)
}

func TestExportableFilesUsesDirectoryConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))

	root := filepath.Join(tmp, "proj")
	writeTree(t, root, map[string]string{
		".ctxport.json": `{"ignore_patterns": ["secret/"]}`,
		"secret/s.py":   "",
		"src/main.py":   "",
	})

	entries, err := ExportableFiles(root, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.py"}, relPaths(entries))
}
