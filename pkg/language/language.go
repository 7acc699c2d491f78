// Package language resolves file names to a display language for markdown
// fences and decides whether a file is text-like and exportable.
package language

import (
	"strings"

	"ctxport/pkg/config"
)

// Resolver answers language and text/binary questions using the effective
// configuration. It is read-only after construction.
type Resolver struct {
	filenames map[string]string
	languages map[string]string
	textExts  map[string]bool
	fallback  string
}

// NewResolver builds a Resolver from the merged configuration.
func NewResolver(cfg *config.EffectiveConfig) *Resolver {
	return &Resolver{
		filenames: cfg.FilenameMap,
		languages: cfg.LanguageMap,
		textExts:  cfg.TextExtensions,
		fallback:  cfg.DefaultLanguage,
	}
}

// Resolve maps a base file name to its display language and text
// classification. Filename-map hits win over extension lookups and are
// always treated as text; a file whose extension is not a known text
// extension is classified binary and excluded from export.
func (r *Resolver) Resolve(fileName string) (language string, isText bool) {
	if lang, ok := r.filenames[strings.ToLower(fileName)]; ok {
		return lang, true
	}

	ext := extensionOf(fileName)
	if ext == "" || !r.textExts[ext] {
		return "", false
	}

	if lang, ok := r.languages[ext]; ok {
		return lang, true
	}
	return r.fallback, true
}

// extensionOf returns the lowercased extension including the leading dot.
// A name whose only dot is the first character (".gitignore") has no
// extension; such files resolve through the filename map or not at all.
func extensionOf(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(fileName[i:])
}
