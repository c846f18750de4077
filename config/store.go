// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import (
	"go.uber.org/zap"

	"github.com/framegrace/texelkit/internal/logging"
)

func loadSystemLocked() error {
	log := logging.L()

	path, err := systemConfigPath()
	if err != nil {
		log.Warn("Config: Failed to resolve config path", zap.Error(err))
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Warn("Config: Failed to read config", zap.String("path", path), zap.Error(readErr))
		cfg = make(Config)
	}

	if !exists || len(cfg) == 0 {
		if def := defaultSystemConfig(); def != nil {
			cfg = def
		} else if cfg == nil {
			cfg = make(Config)
		}
		applySystemDefaults(cfg)
		if readErr == nil {
			if err := writeConfig(path, cfg); err != nil {
				log.Warn("Config: Failed to write default config", zap.Error(err))
				readErr = err
			}
		}
	} else {
		applySystemDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		log.Debug("Config: Loaded config", zap.String("path", path))
	}
	return readErr
}
