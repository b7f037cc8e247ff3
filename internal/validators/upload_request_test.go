// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-resume-uploader/models"
	"github.com/stretchr/testify/assert"
)

func validUploadRequest() models.UploadRequest {
	return models.UploadRequest{
		Endpoint:       "http://localhost:5000/upload",
		FilePath:       "resume.pdf",
		FileFieldName:  "pdf",
		JobDescription: "Looking for a software developer",
		JobType:        "software",
	}
}

func TestUploadRequestValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.UploadRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *models.UploadRequest) {}},
		{name: "https endpoint", modify: func(r *models.UploadRequest) { r.Endpoint = "https://ranker.example.com/upload" }},
		{name: "empty endpoint falls back to config", modify: func(r *models.UploadRequest) { r.Endpoint = "" }},
		{name: "empty field name falls back to default", modify: func(r *models.UploadRequest) { r.FileFieldName = "" }},
		{name: "empty job fields are the server's business", modify: func(r *models.UploadRequest) { r.JobDescription, r.JobType = "", "" }},
		{name: "endpoint without scheme", modify: func(r *models.UploadRequest) { r.Endpoint = "localhost:5000/upload" }, wantErr: ErrInvalidEndpoint},
		{name: "ftp endpoint", modify: func(r *models.UploadRequest) { r.Endpoint = "ftp://localhost/upload" }, wantErr: ErrInvalidEndpoint},
		{name: "endpoint without host", modify: func(r *models.UploadRequest) { r.Endpoint = "http:///upload" }, wantErr: ErrInvalidEndpoint},
		{name: "unparsable endpoint", modify: func(r *models.UploadRequest) { r.Endpoint = "http://[::1" }, wantErr: ErrInvalidEndpoint},
		{name: "empty file path", modify: func(r *models.UploadRequest) { r.FilePath = "" }, wantErr: ErrEmptyFilePath},
		{name: "blank file path", modify: func(r *models.UploadRequest) { r.FilePath = "   " }, wantErr: ErrEmptyFilePath},
		{name: "field name with quote", modify: func(r *models.UploadRequest) { r.FileFieldName = `pd"f` }, wantErr: ErrInvalidFileFieldName},
		{name: "field name with newline", modify: func(r *models.UploadRequest) { r.FileFieldName = "pdf\r\nX-Evil: 1" }, wantErr: ErrInvalidFileFieldName},
		{name: "blank field name", modify: func(r *models.UploadRequest) { r.FileFieldName = "  " }, wantErr: ErrInvalidFileFieldName},
	}

	v := NewUploadRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUploadRequest()
			tt.modify(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadRequestValidator_Pointer(t *testing.T) {
	v := NewUploadRequestValidator()
	req := validUploadRequest()

	assert.NoError(t, v.Validate(context.Background(), &req))

	var nilReq *models.UploadRequest
	assert.ErrorIs(t, v.Validate(context.Background(), nilReq), ErrUnsupportedType)
}

func TestUploadRequestValidator_UnsupportedType(t *testing.T) {
	err := NewUploadRequestValidator().Validate(context.Background(), "resume.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUploadRequestValidator_FieldScoping(t *testing.T) {
	v := NewUploadRequestValidator()
	req := validUploadRequest()
	req.FilePath = ""

	assert.NoError(t, v.Validate(context.Background(), req, FieldEndpoint, FieldFileFieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldFilePath), ErrEmptyFilePath)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "job_type"), ErrUnknownField)
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, ValidateEndpoint("http://localhost:5000/upload"))
	assert.NoError(t, ValidateEndpoint(" http://127.0.0.1:5000/upload "))
	assert.ErrorIs(t, ValidateEndpoint(""), ErrInvalidEndpoint)
	assert.ErrorIs(t, ValidateEndpoint("/upload"), ErrInvalidEndpoint)
}
