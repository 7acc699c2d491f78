package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// exampleJSON is the starter config written by `ctxport init`. It shows every
// supported key with placeholder values.
const exampleJSON = `{
  "language_map": {
    ".myext": "mylang"
  },
  "filename_map": {
    "justfile": "makefile"
  },
  "text_extensions": [
    ".myext"
  ],
  "ignore_patterns": [
    "*.log",
    "temp/"
  ]
}
`

// WriteExample creates a starter configuration file at path. It refuses to
// overwrite an existing file.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(exampleJSON), 0644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}

// GlobalConfigFile returns the preferred location for a new global config,
// honoring XDG_CONFIG_HOME.
func GlobalConfigFile() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ctxport", GlobalConfigName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ctxport", GlobalConfigName), nil
}
