package service

import "errors"

var (
	ErrInvalidUploadRequest = errors.New("invalid upload request")
	ErrResumeUnreadable     = errors.New("resume file cannot be read")
	ErrServerUnreachable    = errors.New("ranking service is unreachable")
	ErrServerUnhealthy      = errors.New("ranking service reported an error")

	ErrNilAdapter = errors.New("upload adapter is not provided")
)
