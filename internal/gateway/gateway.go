package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/internal/planner"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// CoursesParameter is the query string parameter holding the comma separated course list
const CoursesParameter = "courses"

// ErrMissingCourses is returned when a request carries no course at all.
var ErrMissingCourses = errors.New("query string parameter \"courses\" is required")

// Request is the subset of an API gateway proxy event the handler reads.
type Request struct {
	QueryStringParameters map[string]string `json:"queryStringParameters"`
}

// Response is an API gateway proxy response; Body holds the JSON document as a string.
type Response struct {
	IsBase64Encoded bool              `json:"isBase64Encoded"`
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
}

type Planner interface {
	Plan(ctx context.Context, courseNames []string) ([][]model.ScheduleEntry, error)
}

type Handler struct {
	planner Planner
	log     logger.Logger
}

func NewHandler(planner Planner, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Handler{planner: planner, log: log}
}

func (handler *Handler) Handle(ctx context.Context, request Request) Response {
	courses := planner.ParseCourses(request.QueryStringParameters[CoursesParameter])
	if len(courses) == 0 {
		return ErrorResponse(ErrMissingCourses)
	}

	result, err := handler.planner.Plan(ctx, courses)
	if err != nil {
		handler.log.Warnf("request for %v failed: %v", courses, err)
		return ErrorResponse(err)
	}
	return JSONResponse(http.StatusOK, result)
}

// JSONResponse wraps a JSON encoded body in the envelope
func JSONResponse(status int, body any) Response {
	encoded, err := json.Marshal(body)
	if err != nil {
		return ErrorResponse(err)
	}
	return Response{
		IsBase64Encoded: false,
		StatusCode:      status,
		Headers:         map[string]string{"Content-Type": "application/json"},
		Body:            string(encoded),
	}
}

func ErrorResponse(err error) Response {
	return JSONResponse(StatusCode(err), ErrorBody(err))
}

func ErrorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

// StatusCode maps request errors to HTTP statuses: bad input is 400, unknown courses 404,
// and anything else (malformed data included) 500
func StatusCode(err error) int {
	var invalid model.InvalidRequestError
	var notFound model.DataNotFoundError
	switch {
	case errors.Is(err, ErrMissingCourses), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
