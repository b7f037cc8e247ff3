package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the optional log destination; empty means stderr.
	LogFile string
	// Ping switches the run mode to a service health check.
	Ping bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Endpoint is the upload URL.
	Endpoint string
	// RequestTimeout is the timeout for one upload round trip.
	RequestTimeout time.Duration
	// FileFieldName is the multipart part name of the resume.
	FileFieldName string
}

// ClientUpload describes the submission.
type ClientUpload struct {
	FilePath       string
	JobDescription string
	JobType        string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Upload  ClientUpload
}

// GetClientConfig builds and validates the client view of the merged
// configuration. args are the command-line arguments without the program
// name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
			Ping:     cfg.App.Ping,
		},
		Adapter: ClientAdapter{
			Endpoint:       cfg.Adapter.Endpoint,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			FileFieldName:  cfg.Adapter.FileFieldName,
		},
		Upload: ClientUpload{
			FilePath:       cfg.Upload.FilePath,
			JobDescription: cfg.Upload.JobDescription,
			JobType:        cfg.Upload.JobType,
		},
	}
}
