package main

import (
	"log/slog"

	"github.com/vango-dev/autoform/internal/config"
	"github.com/vango-dev/autoform/internal/errors"
)

// loadConfig loads the file named by --config, or searches upward from the
// working directory. Without --config a missing file is not an error: the
// defaults of config.New are used.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		if errors.CodeOf(err) == "E141" {
			slog.Debug("no autoform.json found, using defaults")
			return config.New(), nil
		}
		return nil, err
	}
	slog.Debug("loaded config", "path", cfg.Path())
	return cfg, nil
}
