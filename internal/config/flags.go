package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args (program name
// excluded). Unset flags stay zero so they never override other sources.
//
// Flags:
//
//	-u upload endpoint URL
//	-f resume file path
//	-field multipart field name of the file part
//	-d job description
//	-t job type (software, dev, data science, ml, web, frontend, general)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path (stderr when empty)
//	-ping check the service root instead of uploading
//	-c/-config json file path with configs
//
// Returns flag.ErrHelp when -h or -help is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, nil)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var endpoint string
	var filePath string
	var fileFieldName string
	var jobDescription string
	var jobType string
	var requestTimeout time.Duration
	var logLevel string
	var logFile string
	var ping bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.StringVar(&endpoint, "u", "", "Upload endpoint URL")
	fs.StringVar(&filePath, "f", "", "Resume file path")
	fs.StringVar(&fileFieldName, "field", "", "Multipart field name of the file part")
	fs.StringVar(&jobDescription, "d", "", "Job description")
	fs.StringVar(&jobType, "t", "", "Job type")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&ping, "ping", false, "Check the service instead of uploading")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
			Ping:     ping,
		},
		Adapter: Adapter{
			Endpoint:       endpoint,
			RequestTimeout: requestTimeout,
			FileFieldName:  fileFieldName,
		},
		Upload: Upload{
			FilePath:       filePath,
			JobDescription: jobDescription,
			JobType:        jobType,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
