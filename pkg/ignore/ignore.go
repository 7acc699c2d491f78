// Package ignore compiles glob-style exclusion patterns into a matcher for
// slash-separated relative paths.
//
// Two pattern forms are supported. A pattern with a trailing '/' matches
// directories only, at any depth, and everything beneath them. Any other
// pattern is a glob ('*', '?', character classes; '*' never crosses '/')
// matched against the entry's base name, its full relative path, or any
// single path component. Matching is case-sensitive and there is no
// negation syntax: the first matching pattern excludes the entry.
package ignore

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Rule is a single compiled ignore pattern.
type Rule struct {
	Source  string // the original pattern text
	DirOnly bool   // the pattern ended with '/'

	full   *regexp.Regexp // the path itself, or the pattern at any component level
	within *regexp.Regexp // strictly beneath a matched directory
}

// Matcher holds the compiled pattern list for one run.
type Matcher struct {
	rules  []Rule
	logger *zap.Logger
}

// NewMatcher compiles patterns into a Matcher. Invalid patterns (such as an
// unclosed character class) are skipped with a warning rather than failing
// the run.
func NewMatcher(patterns []string, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}
	for _, pattern := range patterns {
		rule, err := compile(pattern)
		if err != nil {
			logger.Warn("Skipping invalid ignore pattern",
				zap.String("pattern", pattern),
				zap.Error(err))
			continue
		}
		if rule != nil {
			m.rules = append(m.rules, *rule)
		}
	}
	return m
}

// Rules returns the compiled rules, for diagnostics.
func (m *Matcher) Rules() []Rule { return m.rules }

// Match reports whether the entry at relPath is excluded. relPath is the
// path relative to the export root; isDir distinguishes directories so that
// directory-only rules never exclude a plain file of the same name.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	rel := strings.Trim(filepath.ToSlash(relPath), "/")
	if rel == "" || rel == "." {
		return false
	}
	for i := range m.rules {
		if m.rules[i].matches(rel, isDir) {
			return true
		}
	}
	return false
}

func (r *Rule) matches(rel string, isDir bool) bool {
	if r.DirOnly && !isDir {
		return r.within.MatchString(rel)
	}
	return r.full.MatchString(rel)
}

// compile translates one pattern into a Rule. Blank patterns yield nil.
func compile(pattern string) (*Rule, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return nil, nil
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	body := strings.TrimSuffix(trimmed, "/")
	body = strings.TrimPrefix(body, "/")
	if body == "" {
		return nil, fmt.Errorf("empty pattern %q", pattern)
	}

	translated, err := translateGlob(body)
	if err != nil {
		return nil, err
	}

	// The (?:.*/)? prefix lets the pattern match at any component depth while
	// still requiring a full component boundary, so "build" never matches
	// "abuild".
	full, err := regexp.Compile(`^(?:.*/)?` + translated + `(?:/.*)?$`)
	if err != nil {
		return nil, err
	}
	within, err := regexp.Compile(`^(?:.*/)?` + translated + `/.*$`)
	if err != nil {
		return nil, err
	}

	return &Rule{
		Source:  pattern,
		DirOnly: dirOnly,
		full:    full,
		within:  within,
	}, nil
}

// translateGlob converts a glob body to a regular expression fragment.
// '*' and '?' stay within one path component; character classes pass
// through with a leading '!' rewritten to '^'.
func translateGlob(glob string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		case '[':
			j := i + 1
			if j < len(glob) && (glob[j] == '!' || glob[j] == '^') {
				j++
			}
			if j < len(glob) && glob[j] == ']' {
				j++ // a ']' right after the opener is a literal member
			}
			for j < len(glob) && glob[j] != ']' {
				j++
			}
			if j >= len(glob) {
				return "", fmt.Errorf("unclosed character class in %q", glob)
			}
			class := glob[i : j+1]
			if strings.HasPrefix(class, "[!") {
				class = "[^" + class[2:]
			}
			b.WriteString(class)
			i = j
		case '/':
			b.WriteByte(c)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String(), nil
}
