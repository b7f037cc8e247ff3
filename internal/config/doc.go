// Package config provides configuration loading, merging, and validation
// facilities for the uploader.
//
// Configuration is assembled from several sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c / -config)
//  3. Environment variables, including an optional .env file
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the merged raw view
// and [GetClientConfig] for the validated client view.
package config
