// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.Endpoint) == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if strings.TrimSpace(cfg.Adapter.FileFieldName) == "" {
		return fmt.Errorf("%w: file field name is required", ErrInvalidAdapterConfigs)
	}

	if !cfg.App.Ping {
		if strings.TrimSpace(cfg.Upload.FilePath) == "" {
			return fmt.Errorf("%w: resume file path is required", ErrInvalidUploadConfigs)
		}
		if strings.TrimSpace(cfg.Upload.JobDescription) == "" {
			return fmt.Errorf("%w: job description is required", ErrInvalidUploadConfigs)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
