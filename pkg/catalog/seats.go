package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

const (
	seatsMarker = "Total Seats Remaining"
	fullMarker  = "Note: this section is full"
)

// ErrNoSeatInformation is returned when the catalog page does not list any seat counts,
// usually because the section does not exist in the session.
var ErrNoSeatInformation = errors.New("page does not contain seat information")

// SeatChecker looks up seat availability on the course catalog site.
type SeatChecker struct {
	BaseURL string
	Year    string
	Session string
	Client  *http.Client
	Log     logger.Logger
}

// ParseSectionName splits "<DEPARTMENT> <COURSE #> <SECTION #>", e.g. "CPSC 221 101"
func ParseSectionName(section string) (department, course, number string, err error) {
	tokens := strings.Fields(section)
	if len(tokens) != 3 {
		return "", "", "", model.InvalidRequestError{Request: section, Format: "<DEPARTMENT> <COURSE #> <SECTION #>"}
	}
	return tokens[0], tokens[1], tokens[2], nil
}

func (checker *SeatChecker) sectionURL(department, course, section string) string {
	query := url.Values{}
	query.Set("pname", "subjarea")
	query.Set("tname", "subj-course")
	query.Set("sessyr", checker.Year)
	query.Set("sesscd", checker.Session)
	query.Set("dept", department)
	query.Set("course", course)
	query.Set("section", section)
	return strings.TrimRight(checker.BaseURL, "/") + "/cs/courseschedule?" + query.Encode()
}

// IsFull reports whether the section has no remaining seats
func (checker *SeatChecker) IsFull(ctx context.Context, section string) (bool, error) {
	department, course, number, err := ParseSectionName(section)
	if err != nil {
		return false, err
	}

	pageURL := checker.sectionURL(department, course, number)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return false, err
	}
	client := checker.Client
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(request)
	if err != nil {
		return false, fmt.Errorf("cannot fetch section page: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return false, fmt.Errorf("unexpected status %v from %v", response.StatusCode, pageURL)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return false, err
	}

	page := string(body)
	if !strings.Contains(page, seatsMarker) {
		return false, fmt.Errorf("%w: %v", ErrNoSeatInformation, pageURL)
	}
	full := strings.Contains(page, fullMarker)
	if checker.Log != nil {
		checker.Log.Debugw("checked seats", map[string]any{"section": section, "full": full})
	}
	return full, nil
}
