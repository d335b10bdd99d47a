package coursedb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/samber/lo"
)

// Uploader publishes a database to the remote store, one department per request:
// PUT <BaseURL>/<Year><Session>/<DEPT>.json
type Uploader struct {
	BaseURL string
	Year    string
	Session string
	Client  *http.Client
	// Delay between two department uploads.
	Delay time.Duration
	Log   logger.Logger
}

// Upload sends the departments in name order and stops at the first failure
func (uploader *Uploader) Upload(ctx context.Context, database model.Database) error {
	departments := lo.Keys(database)
	slices.Sort(departments)

	for i, department := range departments {
		if i > 0 && uploader.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(uploader.Delay):
			}
		}
		if err := uploader.uploadDepartment(ctx, department, database[department]); err != nil {
			return err
		}
	}
	return nil
}

func (uploader *Uploader) departmentURL(department string) string {
	return fmt.Sprintf("%v/%v/%v.json", strings.TrimRight(uploader.BaseURL, "/"), datasetName(uploader.Year, uploader.Session), department)
}

func (uploader *Uploader) uploadDepartment(ctx context.Context, name string, department model.Department) error {
	body, err := json.Marshal(model.RawDepartment(department))
	if err != nil {
		return fmt.Errorf("cannot encode department %v: %w", name, err)
	}

	url := uploader.departmentURL(name)
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	client := uploader.Client
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("cannot upload department %v: %w", name, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%w %v uploading department %v", ErrUnexpectedStatus, response.StatusCode, name)
	}
	if uploader.Log != nil {
		uploader.Log.Infof("uploaded department %v (%d courses)", name, len(department))
	}
	return nil
}
