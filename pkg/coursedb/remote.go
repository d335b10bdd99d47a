package coursedb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// RemoteSource downloads the whole dataset from <BaseURL>/<Year><Session>.json
type RemoteSource struct {
	BaseURL string
	Year    string
	Session string
	Client  *http.Client
	Log     logger.Logger
}

func (source *RemoteSource) URL() string {
	return fmt.Sprintf("%v/%v.json", strings.TrimRight(source.BaseURL, "/"), datasetName(source.Year, source.Session))
}

func (source *RemoteSource) Load(ctx context.Context) (model.Database, error) {
	raw, err := source.Download(ctx)
	if err != nil {
		return nil, err
	}
	database, err := model.DatabaseFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("cannot decode course database from %v: %w", source.URL(), err)
	}
	return database, nil
}

// Download returns the raw JSON document
func (source *RemoteSource) Download(ctx context.Context) ([]byte, error) {
	url := source.URL()
	source.logger().Debugf("downloading course database from %v", url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := source.client().Do(request)
	if err != nil {
		return nil, fmt.Errorf("cannot download course database: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w %v from %v", ErrUnexpectedStatus, response.StatusCode, url)
	}
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read course database: %w", err)
	}
	source.logger().Infof("downloaded %d bytes from %v", len(raw), url)
	return raw, nil
}

func (source *RemoteSource) client() *http.Client {
	if source.Client == nil {
		return http.DefaultClient
	}
	return source.Client
}

func (source *RemoteSource) logger() logger.Logger {
	if source.Log == nil {
		return logger.NopLogger{}
	}
	return source.Log
}
