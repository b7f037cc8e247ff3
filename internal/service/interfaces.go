package service

import (
	"context"

	"github.com/MKhiriev/go-resume-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_service_mock.go -package=mock

// UploadService is the client-side entry point for submitting resumes.
type UploadService interface {
	// Upload validates req, tags it with an upload ID when it has none, and
	// hands it to the adapter. A response with any status code is returned
	// as-is; only failures to obtain a response are errors.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Ping reports whether the ranking service is reachable.
	Ping(ctx context.Context) (models.ServerInfo, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces correlation IDs for uploads.
type IDGenerator interface {
	Generate() string
}
