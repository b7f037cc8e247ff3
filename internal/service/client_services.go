package service

import (
	"github.com/MKhiriev/go-resume-uploader/internal/adapter"
	"github.com/MKhiriev/go-resume-uploader/internal/logger"
	"github.com/MKhiriev/go-resume-uploader/models"
)

type ClientServices struct {
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewClientServices(uploadAdapter adapter.UploadAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (*ClientServices, error) {
	uploadSvc, err := NewClientUploadService(uploadAdapter, log)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		UploadService:  uploadSvc,
		AppInfoService: NewAppInfoService(buildInfo, log),
	}, nil
}
