// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resume-uploader/internal/adapter"
	"github.com/MKhiriev/go-resume-uploader/internal/logger"
	"github.com/MKhiriev/go-resume-uploader/internal/utils"
	"github.com/MKhiriev/go-resume-uploader/internal/validators"
	"github.com/MKhiriev/go-resume-uploader/models"
)

type clientUploadService struct {
	adapter   adapter.UploadAdapter
	validator validators.Validator
	ids       IDGenerator

	logger *logger.Logger
}

// NewClientUploadService builds the [UploadService] on top of uploadAdapter.
// Upload IDs are UUIDv7 strings.
func NewClientUploadService(uploadAdapter adapter.UploadAdapter, log *logger.Logger) (UploadService, error) {
	if uploadAdapter == nil {
		return nil, ErrNilAdapter
	}
	if log == nil {
		log = logger.Nop()
	}

	return &clientUploadService{
		adapter:   uploadAdapter,
		validator: validators.NewUploadRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}, nil
}

func (s *clientUploadService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: %w", ErrInvalidUploadRequest, err)
	}

	if req.ID == "" {
		req.ID = s.ids.Generate()
	}

	log := s.logger.WithStr("upload_id", req.ID)
	ctx = log.WithContext(ctx)

	if req.JobType != "" && !models.IsKnownJobType(req.JobType) {
		log.Warn().Str("job_type", req.JobType).Msg("unknown job type, server will use general weights")
	}

	log.Info().
		Str("file", req.FilePath).
		Str("job_type", req.JobType).
		Int("job_description_len", len(req.JobDescription)).
		Msg("uploading resume")

	started := time.Now()
	resp, err := s.adapter.Upload(ctx, req)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("upload failed")
		return models.UploadResponse{}, mapAdapterError(err)
	}

	event := log.Info()
	if !resp.IsSuccess() {
		event = log.Warn()
	}
	event.
		Int("status", resp.StatusCode).
		Stringer("body_kind", resp.Body.Kind()).
		Dur("elapsed", time.Since(started)).
		Msg("upload finished")

	return resp, nil
}

func (s *clientUploadService) Ping(ctx context.Context) (models.ServerInfo, error) {
	info, err := s.adapter.Ping(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("ping failed")
		return models.ServerInfo{}, mapAdapterError(err)
	}

	s.logger.Debug().Str("message", info.Message).Str("base_url", info.BaseURL).Msg("ping ok")
	return info, nil
}
