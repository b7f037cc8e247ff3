package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-u", "http://ranker:5000/upload",
				"-f", "/home/me/cv.pdf",
				"-field", "resume",
				"-d", "Backend engineer, Go and Postgres",
				"-t", "data science",
				"-request-timeout", "1m",
				"-log-level", "debug",
				"-log-file", "/tmp/uploader.log",
				"-ping",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://ranker:5000/upload", cfg.Adapter.Endpoint)
				assert.Equal(t, "/home/me/cv.pdf", cfg.Upload.FilePath)
				assert.Equal(t, "resume", cfg.Adapter.FileFieldName)
				assert.Equal(t, "Backend engineer, Go and Postgres", cfg.Upload.JobDescription)
				assert.Equal(t, "data science", cfg.Upload.JobType)
				assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "debug", cfg.App.LogLevel)
				assert.Equal(t, "/tmp/uploader.log", cfg.App.LogFile)
				assert.True(t, cfg.App.Ping)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-f", "cv.pdf",
				"-d", "anything",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cv.pdf", cfg.Upload.FilePath)
				assert.Equal(t, "anything", cfg.Upload.JobDescription)
				assert.Empty(t, cfg.Adapter.Endpoint)
				assert.Empty(t, cfg.Upload.JobType)
				assert.False(t, cfg.App.Ping)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "unknown flag",
			args: []string{"-token-sign-key", "secret"},
		},
		{
			name: "invalid duration",
			args: []string{"-request-timeout", "later"},
		},
		{
			name: "missing value",
			args: []string{"-f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args, io.Discard)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.NotErrorIs(t, err, flag.ErrHelp)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	cfg, err := parseFlags([]string{"-h"}, io.Discard)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseFlags_IndependentCalls(t *testing.T) {
	first, err := ParseFlags([]string{"-f", "first.pdf"})
	require.NoError(t, err)

	second, err := ParseFlags([]string{"-f", "second.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "first.pdf", first.Upload.FilePath)
	assert.Equal(t, "second.pdf", second.Upload.FilePath)
}
