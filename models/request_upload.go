// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// DefaultFileFieldName is the multipart part name the resume file is sent
	// under unless the caller overrides it.
	DefaultFileFieldName = "pdf"

	// FieldJobDescription is the multipart part carrying the job description text.
	FieldJobDescription = "jobDescription"

	// FieldJobType is the multipart part carrying the job category.
	FieldJobType = "jobType"

	// ContentTypePDF is the media type declared on the file part.
	ContentTypePDF = "application/pdf"
)

// UploadRequest describes a single resume upload. It is built fresh for every
// call and discarded once the response has been obtained.
type UploadRequest struct {
	// ID is an optional correlation identifier sent as the X-Request-ID
	// header. The upload service fills it in when empty.
	ID string

	// Endpoint is the absolute URL the form is POSTed to. When empty the
	// client's configured endpoint is used.
	Endpoint string

	// FilePath is the local path of the resume. It must name a readable
	// regular file at call time.
	FilePath string

	// FileFieldName is the multipart part name for the file. When empty
	// [DefaultFileFieldName] (or the configured override) is used.
	FileFieldName string

	// JobDescription is sent verbatim as the jobDescription part.
	JobDescription string

	// JobType is sent verbatim as the jobType part.
	JobType string
}
