// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// uploader.
//
// All Msg* constants are message strings the ranking service writes into
// the error and warnings fields of its JSON responses. Keeping them in one
// place lets the client recognise them without scattering literals.
package app

const (
	// MsgJobDescriptionRequired is the error of a 400 response when the
	// jobDescription part was empty or missing.
	MsgJobDescriptionRequired = "Job description is required"

	// MsgNoPDFUploaded is the warning emitted when the server saw no file
	// part under the expected field name. The request still succeeds with a
	// score computed from an empty resume.
	MsgNoPDFUploaded = "No PDF uploaded. Scoring computed with empty resume."

	// MsgResumeEmptyAfterExtraction is the warning emitted when the PDF had
	// no extractable text (for example, a scanned image).
	MsgResumeEmptyAfterExtraction = "Resume appears empty after text extraction. Scoring computed with empty resume."

	// MsgUnexpectedServerIssue is the warning emitted when the server failed
	// internally but still answered 200 with an empty-resume score.
	MsgUnexpectedServerIssue = "Unexpected server issue. Computed with empty resume."
)

// Hint returns operator guidance for a known server message, or "" when
// there is nothing to add.
func Hint(msg string) string {
	switch msg {
	case MsgJobDescriptionRequired:
		return "pass a non-empty job description with -d"
	case MsgNoPDFUploaded:
		return "the server did not find the file part; check the -field name"
	case MsgResumeEmptyAfterExtraction:
		return "the PDF has no text layer; export it with selectable text"
	case MsgUnexpectedServerIssue:
		return "the score is not based on the resume; retry later"
	}
	return ""
}
