package coursedb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// CachedSource reads a local copy of the remote store, downloading it first when it does not exist yet.
type CachedSource struct {
	Remote *RemoteSource
	Path   string
	Log    logger.Logger
}

func (source *CachedSource) Load(ctx context.Context) (model.Database, error) {
	_, err := os.Stat(source.Path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := source.Refresh(ctx); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return (&FileSource{Path: source.Path}).Load(ctx)
}

// Refresh downloads the remote store and overwrites the local copy
func (source *CachedSource) Refresh(ctx context.Context) error {
	raw, err := source.Remote.Download(ctx)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(source.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(source.Path, raw, 0o644); err != nil {
		return fmt.Errorf("cannot write course database cache: %w", err)
	}
	if source.Log != nil {
		source.Log.Infof("cached course database at %v", source.Path)
	}
	return nil
}
