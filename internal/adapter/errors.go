package adapter

import "errors"

var (
	// ErrFileAccess means the resume could not be opened or read before the
	// request was sent. No HTTP request is issued in this case.
	ErrFileAccess = errors.New("file access error")

	// ErrTransport means no HTTP response was received: DNS failure,
	// refused or reset connection, timeout or cancelled context.
	ErrTransport = errors.New("transport error")

	// ErrInvalidEndpoint means the configured endpoint is not an absolute
	// http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrBadRequest is returned by Ping when the server answers 400.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned by Ping when the server answers 404, usually
	// because the endpoint points at the wrong host or path.
	ErrNotFound = errors.New("not found")

	// ErrInternalServerError is returned by Ping when the server answers 500.
	ErrInternalServerError = errors.New("internal server error")
)
