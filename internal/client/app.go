package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-resume-uploader/internal/app"
	"github.com/MKhiriev/go-resume-uploader/internal/config"
	"github.com/MKhiriev/go-resume-uploader/internal/logger"
	"github.com/MKhiriev/go-resume-uploader/internal/service"
	"github.com/MKhiriev/go-resume-uploader/models"
)

var (
	ErrNoServices = errors.New("client services are not provided")
	ErrNoConfig   = errors.New("client config is not provided")
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	appCfg   config.ClientApp
	upload   config.ClientUpload

	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the CLI runtime. Results are written to out.
func NewApp(services *service.ClientServices, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil || services.UploadService == nil || services.AppInfoService == nil {
		return nil, ErrNoServices
	}
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		services: services,
		appCfg:   cfg.App,
		upload:   cfg.Upload,
		out:      out,
		logger:   log,
	}, nil
}

// Run performs one upload, or a ping when configured so.
func (a *App) Run(ctx context.Context) error {
	buildInfo := a.services.AppInfoService.GetBuildInfo(ctx)
	a.logger.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Bool("ping", a.appCfg.Ping).
		Msg("resume uploader started")

	if a.appCfg.Ping {
		return a.ping(ctx)
	}
	return a.uploadResume(ctx)
}

func (a *App) ping(ctx context.Context) error {
	info, err := a.services.UploadService.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping ranking service: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "Server: %s (%s)\n", info.Message, info.BaseURL)
	return err
}

func (a *App) uploadResume(ctx context.Context) error {
	resp, err := a.services.UploadService.Upload(ctx, models.UploadRequest{
		FilePath:       a.upload.FilePath,
		JobDescription: a.upload.JobDescription,
		JobType:        a.upload.JobType,
	})
	if err != nil {
		return fmt.Errorf("upload resume: %w", err)
	}

	if _, err = fmt.Fprintf(a.out, "Status: %d\nResponse JSON: %s\n", resp.StatusCode, resp.Body); err != nil {
		return err
	}

	a.logAnalysis(resp)
	return nil
}

// logAnalysis reports the scoring summary and any server warnings. Bodies
// that are not the scoring report are left alone.
func (a *App) logAnalysis(resp models.UploadResponse) {
	if !resp.Body.IsJSON() {
		return
	}

	var analysis models.Analysis
	if err := resp.Body.Decode(&analysis); err != nil {
		a.logger.Debug().Err(err).Msg("response is not a scoring report")
		return
	}

	if !analysis.Success {
		if analysis.Error != "" {
			event := a.logger.Warn().Str("server_error", analysis.Error)
			if hint := app.Hint(analysis.Error); hint != "" {
				event = event.Str("hint", hint)
			}
			event.Msg("ranking service rejected the upload")
		}
		return
	}

	for _, warning := range analysis.Warnings {
		event := a.logger.Warn().Str("server_warning", warning)
		if hint := app.Hint(warning); hint != "" {
			event = event.Str("hint", hint)
		}
		event.Msg("ranking service warning")
	}

	event := a.logger.Info().
		Int("final_score", analysis.FinalScore).
		Int("keyword_score", analysis.KeywordScore).
		Int("project_experience_score", analysis.ProjectExperienceScore).
		Int("problem_solving_score", analysis.ProblemSolvingScore).
		Int("matched_keywords", analysis.Stats.MatchedCount).
		Int("job_keywords", analysis.Stats.TotalJobKeywords)
	if analysis.SemanticScore != nil {
		event = event.Int("semantic_score", *analysis.SemanticScore)
	}
	event.Msg("resume scored")
}
