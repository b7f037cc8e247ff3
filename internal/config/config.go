// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultEndpoint is the local ranking service upload URL.
	DefaultEndpoint = "http://localhost:5000/upload"

	// DefaultRequestTimeout bounds a single upload round trip.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultFileFieldName is the multipart part name for the resume.
	DefaultFileFieldName = "pdf"

	// DefaultJobType matches the category preselected by the web frontend.
	DefaultJobType = "software"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: logging and run mode.
	App App `envPrefix:"APP_"`

	// Adapter holds the transport settings of the upload client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Upload describes the resume and job being submitted.
	Upload Upload `envPrefix:"UPLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name (debug, info, warn, error...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile, when set, receives log entries instead of stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Ping makes the client check the service root instead of uploading.
	// Env: APP_PING
	Ping bool `env:"PING"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// Endpoint is the absolute upload URL
	// (e.g. "http://localhost:5000/upload").
	// Env: ADAPTER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds a whole request/response exchange
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FileFieldName is the multipart part name for the file.
	// Env: ADAPTER_FILE_FIELD_NAME
	FileFieldName string `env:"FILE_FIELD_NAME"`
}

// Upload describes what gets submitted.
type Upload struct {
	// FilePath is the local resume path.
	// Env: UPLOAD_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// JobDescription is the free-text job posting to score against.
	// Env: UPLOAD_JOB_DESCRIPTION
	JobDescription string `env:"JOB_DESCRIPTION"`

	// JobType selects the server-side score weighting.
	// Env: UPLOAD_JOB_TYPE
	JobType string `env:"JOB_TYPE"`
}

// defaultConfig returns the lowest-priority source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Adapter: Adapter{
			Endpoint:       DefaultEndpoint,
			RequestTimeout: DefaultRequestTimeout,
			FileFieldName:  DefaultFileFieldName,
		},
		Upload: Upload{
			JobType: DefaultJobType,
		},
	}
}

// GetStructuredConfig loads and merges configuration from all sources.
// args are the command-line arguments without the program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load. The error wraps flag.ErrHelp when -h was requested.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
