// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variables are grouped by
// the envPrefix tags of [StructuredConfig]: APP_ (logging, ping mode),
// ADAPTER_ (endpoint, timeout, file field name) and UPLOAD_ (resume path,
// job description, job type). CONFIG names the optional JSON file.
//
// Unset variables leave fields at their zero value so they never override
// another source during the merge. Values that cannot be converted (e.g. an
// ADAPTER_REQUEST_TIMEOUT of "soon") yield a wrapped error.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
