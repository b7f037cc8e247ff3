package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-resume-uploader/internal/config"
	"github.com/MKhiriev/go-resume-uploader/internal/logger"
	"github.com/MKhiriev/go-resume-uploader/internal/utils"
	"github.com/MKhiriev/go-resume-uploader/models"
	"github.com/gabriel-vasile/mimetype"
)

const requestIDHeader = "X-Request-ID"

type httpUploadAdapter struct {
	client *utils.HTTPClient

	endpoint      string
	origin        string
	fileFieldName string

	logger *logger.Logger
}

// NewHTTPUploadAdapter constructs the resty-backed [UploadAdapter].
// adapterCfg.Endpoint is normalised (a missing scheme defaults to http) and
// must resolve to an absolute http(s) URL; an empty FileFieldName defaults
// to [models.DefaultFileFieldName]. A non-positive RequestTimeout leaves the
// transport default in place.
//
// Returns an error wrapping [ErrInvalidEndpoint] if the endpoint is unusable.
func NewHTTPUploadAdapter(adapterCfg config.ClientAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (UploadAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}

	endpoint, origin, err := normalizeEndpoint(adapterCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	fieldName := adapterCfg.FileFieldName
	if fieldName == "" {
		fieldName = models.DefaultFileFieldName
	}

	client := utils.NewHTTPClient(
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithUserAgent(buildInfo.UserAgent()),
		utils.WithLogger(log),
	)

	return &httpUploadAdapter{
		client:        client,
		endpoint:      endpoint,
		origin:        origin,
		fileFieldName: fieldName,
		logger:        log,
	}, nil
}

func normalizeEndpoint(raw string) (endpoint string, origin string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("address must include host")
	}

	return u.String(), u.Scheme + "://" + u.Host + "/", nil
}

// Upload implements [UploadAdapter]. The file part carries the base name of
// req.FilePath and Content-Type application/pdf; jobDescription and jobType
// are sent as plain form fields. Non-2xx statuses and non-JSON bodies are
// returned as a regular [models.UploadResponse].
func (h *httpUploadAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	log := logger.FromContextOr(ctx, h.logger)

	endpoint := h.endpoint
	if override := strings.TrimSpace(req.Endpoint); override != "" {
		endpoint = override
	}
	fieldName := h.fileFieldName
	if req.FileFieldName != "" {
		fieldName = req.FileFieldName
	}

	file, err := openResume(req.FilePath)
	if err != nil {
		return models.UploadResponse{}, err
	}
	defer file.Close()

	if err = sniffResume(file, log); err != nil {
		return models.UploadResponse{}, err
	}

	request := h.client.R().
		SetContext(ctx).
		SetMultipartField(fieldName, filepath.Base(req.FilePath), models.ContentTypePDF, file).
		SetMultipartFormData(map[string]string{
			models.FieldJobDescription: req.JobDescription,
			models.FieldJobType:        req.JobType,
		})
	if req.ID != "" {
		request.SetHeader(requestIDHeader, req.ID)
	}

	started := time.Now()
	resp, err := request.Post(endpoint)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: upload request: %w", ErrTransport, err)
	}

	log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Int("body_bytes", len(resp.Body())).
		Dur("elapsed", time.Since(started)).
		Msg("upload response received")

	return models.NewUploadResponse(resp.StatusCode(), resp.Body()), nil
}

// Ping implements [UploadAdapter] with GET on the endpoint's origin.
func (h *httpUploadAdapter) Ping(ctx context.Context) (models.ServerInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(h.origin)
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: ping request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerInfo{}, err
	}

	var info models.ServerInfo
	if err = models.NewResponseBody(resp.Body()).Decode(&info); err != nil {
		return models.ServerInfo{}, fmt.Errorf("decode ping response: %w", err)
	}

	return info, nil
}

func openResume(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileAccess, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return file, nil
}

// sniffResume warns about files that are not PDFs and rewinds the file so
// the whole content is sent. The media type on the wire stays
// application/pdf regardless.
func sniffResume(file *os.File, log *logger.Logger) error {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrFileAccess, file.Name(), err)
	}
	if !mtype.Is(models.ContentTypePDF) {
		log.Warn().
			Str("file", file.Name()).
			Str("detected", mtype.String()).
			Msg("resume does not look like a pdf")
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind %s: %w", ErrFileAccess, file.Name(), err)
	}
	return nil
}
