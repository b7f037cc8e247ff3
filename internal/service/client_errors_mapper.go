// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resume-uploader/internal/adapter"
)

// mapAdapterError translates the adapter's error into a service business error.
// The adapter error stays in the chain so errors.Is matches both.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrFileAccess):
		return fmt.Errorf("%w: %w", ErrResumeUnreadable, err)

	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerUnhealthy, err)
	}

	return err
}
