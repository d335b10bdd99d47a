package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/limaJavier/coursescheduler/internal/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	loggerKey       = "logger"
	// Longer incoming ids are replaced to keep log lines bounded
	requestIDMaxLen = 64
)

// RequestID reads X-Request-ID or generates a UUID, stores it in the context and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		c.Next()
	}
}

// Logger stores a request scoped logger carrying the request id and logs one line per request;
// 4xx as warnings and 5xx as errors. It must run after RequestID
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		requestLog := log.With(requestIDKey, c.GetString(requestIDKey))
		c.Set(loggerKey, requestLog)

		c.Next()

		status := c.Writer.Status()
		line := "%v %v?%v -> %d in %v"
		args := []any{c.Request.Method, path, query, status, time.Since(start)}
		switch {
		case status >= 500:
			requestLog.Errorf(line, args...)
		case status >= 400:
			requestLog.Warnf(line, args...)
		default:
			requestLog.Infof(line, args...)
		}
	}
}

// Returns the logger stored by Logger, or fallback when the middleware is not installed
func requestLogger(c *gin.Context, fallback logger.Logger) logger.Logger {
	if log, ok := c.Get(loggerKey); ok {
		if requestLog, ok := log.(logger.Logger); ok {
			return requestLog
		}
	}
	return fallback
}
