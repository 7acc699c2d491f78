package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryOnlyPattern(t *testing.T) {
	m := NewMatcher([]string{"build/"}, nil)

	assert.True(t, m.Match("build", true), "the directory itself")
	assert.True(t, m.Match("build/x.txt", false), "a file directly beneath")
	assert.True(t, m.Match("a/build", true), "the directory at a deeper level")
	assert.True(t, m.Match("a/build/y.txt", false), "a file beneath a nested match")

	assert.False(t, m.Match("abuild", true), "component boundaries are respected")
	assert.False(t, m.Match("my-build/file", false))
	assert.False(t, m.Match("build", false), "a plain file named like the directory")
}

func TestDirectoryPatternWithSlash(t *testing.T) {
	m := NewMatcher([]string{"src/build/"}, nil)

	assert.True(t, m.Match("src/build", true))
	assert.True(t, m.Match("src/build/x.txt", false))
	assert.True(t, m.Match("a/src/build/x.txt", false))
	assert.False(t, m.Match("src/buildx", true))
}

func TestGlobPatterns(t *testing.T) {
	m := NewMatcher([]string{"*.log"}, nil)
	assert.True(t, m.Match("x.log", false))
	assert.True(t, m.Match("a/b/x.log", false), "base name matches at any depth")
	assert.False(t, m.Match("x.log.bak", false))

	m = NewMatcher([]string{"file?.txt"}, nil)
	assert.True(t, m.Match("file1.txt", false))
	assert.False(t, m.Match("file12.txt", false))

	m = NewMatcher([]string{"[abc].txt"}, nil)
	assert.True(t, m.Match("a.txt", false))
	assert.False(t, m.Match("d.txt", false))

	m = NewMatcher([]string{"[!a].txt"}, nil)
	assert.True(t, m.Match("b.txt", false))
	assert.False(t, m.Match("a.txt", false))
}

func TestStarDoesNotCrossSeparators(t *testing.T) {
	m := NewMatcher([]string{"src*"}, nil)
	assert.True(t, m.Match("srcfile", false))
	assert.True(t, m.Match("src", true))
	// "src*" also excludes everything under a matching component.
	assert.True(t, m.Match("src/main.py", false))

	m = NewMatcher([]string{"a*c"}, nil)
	assert.False(t, m.Match("a/c", false), "'*' stays within one component")
}

func TestComponentLevelMatch(t *testing.T) {
	m := NewMatcher([]string{"temp"}, nil)
	assert.True(t, m.Match("temp", false))
	assert.True(t, m.Match("temp", true))
	assert.True(t, m.Match("a/temp/x.txt", false), "a match at any component excludes")
	assert.False(t, m.Match("temperature", false))
}

func TestPathPattern(t *testing.T) {
	m := NewMatcher([]string{"docs/*.md"}, nil)
	assert.True(t, m.Match("docs/readme.md", false))
	assert.True(t, m.Match("x/docs/readme.md", false))
	assert.False(t, m.Match("docs/sub/readme.md", false))
}

func TestNoNegationSyntax(t *testing.T) {
	m := NewMatcher([]string{"*.log", "!keep.log"}, nil)
	assert.True(t, m.Match("keep.log", false), "'!' does not re-include")
	assert.True(t, m.Match("!keep.log", false), "'!' is a literal character")
}

func TestMatchingIsCaseSensitive(t *testing.T) {
	m := NewMatcher([]string{"Build/"}, nil)
	assert.True(t, m.Match("Build", true))
	assert.False(t, m.Match("build", true))
}

func TestInvalidPatternSkipped(t *testing.T) {
	m := NewMatcher([]string{"[unclosed", "*.log"}, nil)
	assert.Len(t, m.Rules(), 1, "the invalid pattern is dropped, the rest compile")
	assert.True(t, m.Match("x.log", false))
}

func TestBlankAndRootPaths(t *testing.T) {
	m := NewMatcher([]string{"*", ""}, nil)
	assert.False(t, m.Match("", true))
	assert.False(t, m.Match(".", true))
	assert.True(t, m.Match("anything", false))
}
