package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-resume-uploader/models"
)

// Field name constants used to scope validation of [models.UploadRequest].
const (
	// FieldEndpoint targets the request URL. An empty endpoint is accepted
	// because the client falls back to its configured one.
	FieldEndpoint = "endpoint"

	// FieldFilePath targets the local resume path.
	FieldFilePath = "file_path"

	// FieldFileFieldName targets the multipart part name of the file.
	FieldFileFieldName = "file_field_name"
)

// UploadRequestValidator implements [Validator] for [models.UploadRequest].
type UploadRequestValidator struct{}

// NewUploadRequestValidator returns the validator as the [Validator] interface.
func NewUploadRequestValidator() Validator {
	return &UploadRequestValidator{}
}

// Validate accepts models.UploadRequest and *models.UploadRequest.
// With no fields every field is checked.
func (v *UploadRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUploadRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadRequestValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEndpoint, FieldFilePath, FieldFileFieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEndpoint:
			if req.Endpoint == "" {
				continue
			}
			if err := ValidateEndpoint(req.Endpoint); err != nil {
				return err
			}
		case FieldFilePath:
			if strings.TrimSpace(req.FilePath) == "" {
				return ErrEmptyFilePath
			}
		case FieldFileFieldName:
			if !isValidPartName(req.FileFieldName) {
				return ErrInvalidFileFieldName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateEndpoint checks that raw is an absolute http(s) URL with a host.
func ValidateEndpoint(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	return nil
}

// isValidPartName allows the empty name (default applies) and rejects
// characters that would break the Content-Disposition header.
func isValidPartName(name string) bool {
	if name == "" {
		return true
	}
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, "\"\r\n")
}
