package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-resume-uploader/internal/adapter"
	"github.com/MKhiriev/go-resume-uploader/internal/config"
	"github.com/MKhiriev/go-resume-uploader/internal/logger"
	"github.com/MKhiriev/go-resume-uploader/internal/mock"
	"github.com/MKhiriev/go-resume-uploader/internal/service"
	"github.com/MKhiriev/go-resume-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(ping bool) *config.ClientConfig {
	return &config.ClientConfig{
		App: config.ClientApp{LogLevel: "info", Ping: ping},
		Adapter: config.ClientAdapter{
			Endpoint:       config.DefaultEndpoint,
			RequestTimeout: config.DefaultRequestTimeout,
			FileFieldName:  config.DefaultFileFieldName,
		},
		Upload: config.ClientUpload{
			FilePath:       "/tmp/cv.pdf",
			JobDescription: "Go developer",
			JobType:        "software",
		},
	}
}

// ── NewApp ───────────────────────────────────────────────────────────────────

func TestNewApp_Errors(t *testing.T) {
	_, err := NewApp(nil, testConfig(false), io.Discard, nil)
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, testConfig(false), io.Discard, nil)
	assert.ErrorIs(t, err, ErrNoServices)

	ctrl := gomock.NewController(t)
	svcs := &service.ClientServices{
		UploadService:  mock.NewMockUploadService(ctrl),
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}
	_, err = NewApp(svcs, nil, io.Discard, nil)
	assert.ErrorIs(t, err, ErrNoConfig)
}

// ── Run with mocked services ─────────────────────────────────────────────────

func runMocked(t *testing.T, cfg *config.ClientConfig, log *logger.Logger, expect func(svc *mock.MockUploadService)) (string, error) {
	t.Helper()
	ctrl := gomock.NewController(t)

	uploadSvc := mock.NewMockUploadService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")).AnyTimes()
	expect(uploadSvc)

	var out bytes.Buffer
	a, err := NewApp(&service.ClientServices{UploadService: uploadSvc, AppInfoService: appInfo}, cfg, &out, log)
	require.NoError(t, err)

	err = a.Run(context.Background())
	return out.String(), err
}

func TestApp_Run_PrintsStatusAndJSON(t *testing.T) {
	out, err := runMocked(t, testConfig(false), logger.Nop(), func(svc *mock.MockUploadService) {
		svc.EXPECT().Upload(gomock.Any(), models.UploadRequest{
			FilePath:       "/tmp/cv.pdf",
			JobDescription: "Go developer",
			JobType:        "software",
		}).Return(models.NewUploadResponse(200, []byte(`{ "success": true, "finalScore": 72 }`)), nil)
	})

	require.NoError(t, err)
	assert.Equal(t, "Status: 200\nResponse JSON: {\"finalScore\":72,\"success\":true}\n", out)
}

func TestApp_Run_PrintsRawBody(t *testing.T) {
	out, err := runMocked(t, testConfig(false), logger.Nop(), func(svc *mock.MockUploadService) {
		svc.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(models.NewUploadResponse(500, []byte("Internal Server Error")), nil)
	})

	require.NoError(t, err)
	assert.Equal(t, "Status: 500\nResponse JSON: Internal Server Error\n", out)
}

func TestApp_Run_UploadErrorPrintsNothing(t *testing.T) {
	out, err := runMocked(t, testConfig(false), logger.Nop(), func(svc *mock.MockUploadService) {
		svc.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(models.UploadResponse{}, adapter.ErrTransport)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Empty(t, out)
}

func TestApp_Run_Ping(t *testing.T) {
	out, err := runMocked(t, testConfig(true), logger.Nop(), func(svc *mock.MockUploadService) {
		svc.EXPECT().Ping(gomock.Any()).
			Return(models.ServerInfo{Success: true, Message: "Resume Ranker API is running!", BaseURL: "http://localhost:5000"}, nil)
	})

	require.NoError(t, err)
	assert.Equal(t, "Server: Resume Ranker API is running! (http://localhost:5000)\n", out)
}

func TestApp_Run_PingError(t *testing.T) {
	out, err := runMocked(t, testConfig(true), logger.Nop(), func(svc *mock.MockUploadService) {
		svc.EXPECT().Ping(gomock.Any()).Return(models.ServerInfo{}, service.ErrServerUnreachable)
	})

	assert.ErrorIs(t, err, service.ErrServerUnreachable)
	assert.Empty(t, out)
}

func TestApp_Run_LogsServerWarningsWithHint(t *testing.T) {
	var logs bytes.Buffer
	body := `{"success":true,"warnings":["No PDF uploaded. Scoring computed with empty resume."],"finalScore":10,"semanticScore":null}`

	_, err := runMocked(t, testConfig(false), logger.NewLogger("test", &logs), func(svc *mock.MockUploadService) {
		svc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.NewUploadResponse(200, []byte(body)), nil)
	})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "ranking service warning")
	assert.Contains(t, logs.String(), "-field")
	assert.Contains(t, logs.String(), `"final_score":10`)
	assert.NotContains(t, logs.String(), "semantic_score")
}

func TestApp_Run_LogsBuildInfo(t *testing.T) {
	var logs bytes.Buffer

	_, err := runMocked(t, testConfig(true), logger.NewLogger("test", &logs), func(svc *mock.MockUploadService) {
		svc.EXPECT().Ping(gomock.Any()).Return(models.ServerInfo{Success: true}, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"version":"1.0.0"`)
	assert.Contains(t, logs.String(), `"build_date":"2026-10-01"`)
	assert.Contains(t, logs.String(), `"build_commit":"abc123"`)
}

func TestApp_Run_LogsRejection(t *testing.T) {
	var logs bytes.Buffer
	body := `{"success":false,"error":"Job description is required"}`

	out, err := runMocked(t, testConfig(false), logger.NewLogger("test", &logs), func(svc *mock.MockUploadService) {
		svc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.NewUploadResponse(400, []byte(body)), nil)
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Status: 400\n")
	assert.Contains(t, logs.String(), "ranking service rejected the upload")
	assert.NotContains(t, logs.String(), "resume scored")
}

// ── end to end against an httptest server ────────────────────────────────────

func TestApp_Run_EndToEnd(t *testing.T) {
	type received struct {
		fileName    string
		contentType string
		content     []byte
		description string
		jobType     string
	}
	got := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var rec received
		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err != nil {
				break
			}
			data, _ := io.ReadAll(part)
			switch part.FormName() {
			case "pdf":
				rec.fileName = part.FileName()
				rec.contentType = part.Header.Get("Content-Type")
				rec.content = data
			case "jobDescription":
				rec.description = string(data)
			case "jobType":
				rec.jobType = string(data)
			}
		}
		got <- rec

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"finalScore":81,"warnings":[]}`))
	}))
	defer srv.Close()

	resume := filepath.Join(t.TempDir(), "resume.pdf")
	content := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")
	require.NoError(t, os.WriteFile(resume, content, 0o600))

	cfg := testConfig(false)
	cfg.Adapter.Endpoint = srv.URL + "/upload"
	cfg.Adapter.RequestTimeout = 5 * time.Second
	cfg.Upload.FilePath = resume

	uploadAdapter, err := adapter.NewHTTPUploadAdapter(cfg.Adapter, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)
	svcs, err := service.NewClientServices(uploadAdapter, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	a, err := NewApp(svcs, cfg, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "Status: 200\nResponse JSON: {\"finalScore\":81,\"success\":true,\"warnings\":[]}\n", out.String())

	rec := <-got
	assert.Equal(t, "resume.pdf", rec.fileName)
	assert.Equal(t, "application/pdf", rec.contentType)
	assert.Equal(t, content, rec.content)
	assert.Equal(t, "Go developer", rec.description)
	assert.Equal(t, "software", rec.jobType)
}

func TestApp_Run_EndToEnd_MissingFile(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	cfg := testConfig(false)
	cfg.Adapter.Endpoint = srv.URL + "/upload"
	cfg.Upload.FilePath = filepath.Join(t.TempDir(), "missing.pdf")

	uploadAdapter, err := adapter.NewHTTPUploadAdapter(cfg.Adapter, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)
	svcs, err := service.NewClientServices(uploadAdapter, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	a, err := NewApp(svcs, cfg, &out, logger.Nop())
	require.NoError(t, err)

	err = a.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrFileAccess))
	assert.True(t, errors.Is(err, service.ErrResumeUnreadable))
	assert.Empty(t, out.String())
	assert.Zero(t, hits)
}
