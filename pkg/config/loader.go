package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Well-known configuration file names.
const (
	DirConfigName    = ".ctxport.json"  // per-directory config, discovered by ancestor search
	GlobalConfigName = "ctxport.json"   // global per-user config
	LegacyIgnoreName = "context.ignore" // legacy ignore file, patterns only
)

// ParseError reports a discovered config file whose contents could not be
// parsed. It aborts the run: an explicit failure is preferred to silently
// exporting with a half-applied configuration.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadError reports a config file that exists but could not be opened.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read config %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Load discovers every configuration layer for dir and merges them into the
// effective configuration for the run.
func Load(dir string, logger *zap.Logger) (EffectiveConfig, error) {
	layers, err := DiscoverLayers(dir, logger)
	if err != nil {
		return EffectiveConfig{}, err
	}
	return Merge(layers), nil
}

// DiscoverLayers collects the ordered configuration layers for dir, lowest
// precedence first: built-in defaults, the global user config, ancestor
// directory configs from the outermost ancestor down to dir itself, and the
// legacy ignore file in dir.
func DiscoverLayers(dir string, logger *zap.Logger) ([]RawConfig, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	layers := []RawConfig{Default()}

	if path := globalConfigPath(); path != "" {
		raw, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded global config", zap.String("path", path))
		layers = append(layers, raw)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory %s: %w", dir, err)
	}

	// Collect ancestor configs from dir upward, then apply them outermost
	// first so the directory being exported has the highest precedence.
	var found []string
	for cur := absDir; ; {
		path := filepath.Join(cur, DirConfigName)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			found = append(found, path)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	for i := len(found) - 1; i >= 0; i-- {
		raw, err := readConfigFile(found[i])
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded directory config", zap.String("path", found[i]))
		layers = append(layers, raw)
	}

	patterns, err := readLegacyIgnore(filepath.Join(absDir, LegacyIgnoreName))
	if err != nil {
		return nil, err
	}
	if patterns != nil {
		logger.Debug("Loaded legacy ignore file",
			zap.String("path", filepath.Join(absDir, LegacyIgnoreName)),
			zap.Int("patternCount", len(patterns)))
		layers = append(layers, RawConfig{IgnorePatterns: patterns})
	}

	return layers, nil
}

// globalConfigPath returns the first existing global config location, or ""
// when none exists. XDG_CONFIG_HOME takes priority over the home directory.
func globalConfigPath() string {
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "ctxport", GlobalConfigName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "ctxport", GlobalConfigName),
			filepath.Join(home, "."+GlobalConfigName),
		)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func readConfigFile(path string) (RawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, &ReadError{Path: path, Err: err}
	}
	var raw RawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawConfig{}, &ParseError{Path: path, Err: err}
	}
	return raw, nil
}

// readLegacyIgnore parses a plain-text ignore file: one pattern per line,
// blank lines and '#' comments skipped. A missing file contributes nothing.
func readLegacyIgnore(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	patterns := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return patterns, nil
}
