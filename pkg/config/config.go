// Package config implements the layered configuration model for ctxport.
//
// A run's configuration is assembled from an ordered list of layers: the
// built-in defaults, an optional global user config, any `.ctxport.json`
// found while walking from the export directory up to the filesystem root,
// and finally a legacy `context.ignore` file. Later layers override earlier
// ones key-by-key; see Merge for the exact field rules.
package config

// RawConfig is one configuration layer as read from disk. Every field is
// optional; an absent field means the layer has no opinion and leaves the
// previously merged value untouched.
type RawConfig struct {
	LanguageMap     map[string]string `json:"language_map,omitempty"`
	FilenameMap     map[string]string `json:"filename_map,omitempty"`
	TextExtensions  []string          `json:"text_extensions,omitempty"`
	IgnorePatterns  []string          `json:"ignore_patterns,omitempty"`
	DefaultLanguage *string           `json:"default_language,omitempty"`
}

// EffectiveConfig is the fully merged configuration for a run. It is built
// once by Merge and treated as read-only afterwards.
type EffectiveConfig struct {
	LanguageMap     map[string]string
	FilenameMap     map[string]string
	TextExtensions  map[string]bool
	IgnorePatterns  []string
	DefaultLanguage string
}

// Default returns the built-in lowest-precedence layer.
func Default() RawConfig {
	lang := "text"
	return RawConfig{
		LanguageMap: map[string]string{
			".py":         "python",
			".js":         "javascript",
			".jsx":        "jsx",
			".ts":         "typescript",
			".tsx":        "tsx",
			".html":       "html",
			".css":        "css",
			".scss":       "scss",
			".sass":       "sass",
			".json":       "json",
			".yaml":       "yaml",
			".yml":        "yaml",
			".md":         "markdown",
			".sh":         "bash",
			".bash":       "bash",
			".zsh":        "zsh",
			".fish":       "fish",
			".ps1":        "powershell",
			".c":          "c",
			".cpp":        "cpp",
			".cc":         "cpp",
			".cxx":        "cpp",
			".h":          "c",
			".hpp":        "cpp",
			".hxx":        "cpp",
			".rs":         "rust",
			".go":         "go",
			".java":       "java",
			".kt":         "kotlin",
			".swift":      "swift",
			".rb":         "ruby",
			".php":        "php",
			".sql":        "sql",
			".r":          "r",
			".m":          "matlab",
			".jl":         "julia",
			".tex":        "latex",
			".dockerfile": "dockerfile",
			".xml":        "xml",
			".vue":        "vue",
			".svelte":     "svelte",
			".toml":       "toml",
		},
		FilenameMap: map[string]string{
			"dockerfile":     "dockerfile",
			"makefile":       "makefile",
			"gemfile":        "ruby",
			"rakefile":       "ruby",
			".gitignore":     "gitignore",
			".gitattributes": "gitattributes",
			".editorconfig":  "ini",
			".env":           "bash",
		},
		TextExtensions: []string{
			".txt", ".md", ".yml", ".yaml", ".json", ".xml", ".html", ".css",
			".scss", ".sass", ".js", ".jsx", ".ts", ".tsx", ".py", ".rb",
			".php", ".java", ".kt", ".swift", ".cpp", ".cc", ".cxx", ".c",
			".h", ".hpp", ".hxx", ".rs", ".go", ".sh", ".bash", ".zsh",
			".fish", ".ps1", ".sql", ".r", ".m", ".jl", ".tex", ".vue",
			".svelte", ".dockerfile", ".conf", ".cfg", ".ini", ".toml",
			".lock", ".sum", ".mod",
		},
		IgnorePatterns:  []string{},
		DefaultLanguage: &lang,
	}
}
