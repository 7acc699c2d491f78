// Package logging builds the zap logger used across the ctxport CLI.
package logging

import (
	"go.uber.org/zap"
)

// Setup constructs the application logger. The debug flag switches from the
// production JSON config to the human-readable development config and lowers
// the level to Debug so per-entry walk decisions become visible.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
