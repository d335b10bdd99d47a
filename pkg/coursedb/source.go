package coursedb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/limaJavier/coursescheduler/internal/config"
	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// ErrUnexpectedStatus is returned when the remote store answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Source loads a full course database.
type Source interface {
	Load(ctx context.Context) (model.Database, error)
}

// NewSource builds the source selected by the configuration.
func NewSource(cfg config.DatabaseConfig, log logger.Logger) (Source, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	switch cfg.Source {
	case config.FileSource:
		return &FileSource{Path: cfg.Path}, nil
	case config.RemoteSource:
		return newRemoteSource(cfg, log), nil
	case config.CachedSource:
		return &CachedSource{Remote: newRemoteSource(cfg, log), Path: cfg.CachePath, Log: log}, nil
	default:
		return nil, fmt.Errorf("unknown database source %v", cfg.Source)
	}
}

// NewUploader builds an uploader targeting the configured remote store.
func NewUploader(cfg config.DatabaseConfig, log logger.Logger) *Uploader {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Uploader{
		BaseURL: cfg.BaseURL,
		Year:    cfg.Year,
		Session: cfg.Session,
		Client:  newClient(cfg),
		Delay:   time.Duration(cfg.UploadDelayMillis) * time.Millisecond,
		Log:     log,
	}
}

func newRemoteSource(cfg config.DatabaseConfig, log logger.Logger) *RemoteSource {
	return &RemoteSource{
		BaseURL: cfg.BaseURL,
		Year:    cfg.Year,
		Session: cfg.Session,
		Client:  newClient(cfg),
		Log:     log,
	}
}

func newClient(cfg config.DatabaseConfig) *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
}

// Dataset name of a year and session, e.g. "2017W"
func datasetName(year, session string) string {
	return year + session
}
