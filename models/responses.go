package models

// UploadResponse is the outcome of an upload that reached the server.
// Any status code, including 4xx and 5xx, is represented here; it is up to
// the caller to decide what counts as success.
type UploadResponse struct {
	// StatusCode is the HTTP status returned by the server.
	StatusCode int

	// Body is the response payload, parsed as JSON when possible.
	Body ResponseBody
}

// NewUploadResponse wraps a status code and raw payload, classifying the
// payload via [NewResponseBody].
func NewUploadResponse(statusCode int, raw []byte) UploadResponse {
	return UploadResponse{StatusCode: statusCode, Body: NewResponseBody(raw)}
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r UploadResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ServerInfo is the payload returned by the service root (GET /).
type ServerInfo struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BaseURL string `json:"base_url"`
}
