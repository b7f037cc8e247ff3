// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the resume ranking service over HTTP.
//
// The primary abstraction is [UploadAdapter]; [NewHTTPUploadAdapter] returns
// the multipart/form-data implementation built on resty.
//
// Failures that prevent a response from being obtained are reported with
// the sentinels in errors.go ([ErrFileAccess], [ErrTransport]) so callers can
// use [errors.Is]. A response with any status code is never an error for
// Upload.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-resume-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_adapter_mock.go -package=mock

// UploadAdapter sends resumes to the ranking service.
type UploadAdapter interface {
	// Upload opens req.FilePath, sends it with the job description and job
	// type as one multipart POST, and returns whatever the server answered.
	// The file is closed before Upload returns. At most one HTTP request is
	// made per call.
	//
	// Returns an error wrapping [ErrFileAccess] if the file cannot be opened
	// (no request is made), or [ErrTransport] if no response was received.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Ping calls the service root and decodes its status payload.
	Ping(ctx context.Context) (models.ServerInfo, error)
}
