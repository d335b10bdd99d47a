package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	openPage    = `<html><table><tr><td>Total Seats Remaining:</td><td><strong>12</strong></td></tr></table></html>`
	fullPage    = `<html><strong>Note: this section is full</strong><table><tr><td>Total Seats Remaining:</td><td><strong>0</strong></td></tr></table></html>`
	missingPage = `<html><p>The requested section is either no longer offered at UBC Vancouver or is not being offered this session.</p></html>`
)

func newCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/cs/courseschedule", r.URL.Path)
		assert.Equal(t, "subjarea", query.Get("pname"))
		assert.Equal(t, "subj-course", query.Get("tname"))
		assert.Equal(t, "2017", query.Get("sessyr"))
		assert.Equal(t, "S", query.Get("sesscd"))

		switch query.Get("dept") + " " + query.Get("course") + " " + query.Get("section") {
		case "STAT 251 L1B":
			_, _ = w.Write([]byte(openPage))
		case "CPSC 320 921":
			_, _ = w.Write([]byte(fullPage))
		case "CPSC 000 000":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(missingPage))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIsFull(t *testing.T) {
	//** Arrange
	server := newCatalog(t)
	checker := &SeatChecker{BaseURL: server.URL, Year: "2017", Session: "S", Client: server.Client()}

	//** Act
	open, openErr := checker.IsFull(context.Background(), "STAT 251 L1B")
	full, fullErr := checker.IsFull(context.Background(), "  CPSC 320   921 ")

	//** Assert
	require.NoError(t, openErr)
	require.NoError(t, fullErr)
	assert.False(t, open)
	assert.True(t, full)
}

func TestIsFullErrors(t *testing.T) {
	server := newCatalog(t)
	checker := &SeatChecker{BaseURL: server.URL, Year: "2017", Session: "S", Client: server.Client()}

	_, missingErr := checker.IsFull(context.Background(), "MATH 100 999")
	_, statusErr := checker.IsFull(context.Background(), "CPSC 000 000")
	_, invalidErr := checker.IsFull(context.Background(), "CPSC 221")

	assert.True(t, errors.Is(missingErr, ErrNoSeatInformation))
	assert.ErrorContains(t, statusErr, "unexpected status 500")
	var invalid model.InvalidRequestError
	require.True(t, errors.As(invalidErr, &invalid))
	assert.Contains(t, invalid.Error(), "<DEPARTMENT> <COURSE #> <SECTION #>")
}
