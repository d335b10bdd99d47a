package coursedb

import (
	"context"
	"fmt"

	"github.com/limaJavier/coursescheduler/pkg/model"
)

// FileSource reads the database from a local JSON file.
type FileSource struct {
	Path string
}

func (source *FileSource) Load(ctx context.Context) (model.Database, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	database, err := model.DatabaseFromJson(source.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot load course database from %v: %w", source.Path, err)
	}
	return database, nil
}
