package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/coursescheduler/internal/csvio"
	"github.com/limaJavier/coursescheduler/internal/gateway"
	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/internal/planner"
)

type handlers struct {
	planner  Planner
	envelope *gateway.Handler
	log      logger.Logger
}

func newHandlers(planner Planner, log logger.Logger) *handlers {
	return &handlers{
		planner:  planner,
		envelope: gateway.NewHandler(planner, log),
		log:      log,
	}
}

func (h *handlers) abortWithError(c *gin.Context, err error) {
	status := gateway.StatusCode(err)
	if status >= 500 {
		requestLogger(c, h.log).Errorf("request failed: %v", err)
	}
	c.AbortWithStatusJSON(status, gateway.ErrorBody(err))
}

// GET /schedules?courses=CPSC 221,MATH 100[&format=csv]
func (h *handlers) schedules(c *gin.Context) {
	courses := planner.ParseCourses(c.Query(gateway.CoursesParameter))
	if len(courses) == 0 {
		h.abortWithError(c, gateway.ErrMissingCourses)
		return
	}

	if c.Query("format") == "csv" {
		schedules, err := h.planner.Schedules(c.Request.Context(), courses)
		if err != nil {
			h.abortWithError(c, err)
			return
		}
		csv, err := csvio.ExportSchedulesString(schedules)
		if err != nil {
			h.abortWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
		return
	}

	result, err := h.planner.Plan(c.Request.Context(), courses)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /gateway takes a proxy event and answers with the proxy response envelope
func (h *handlers) gateway(c *gin.Context) {
	var request gateway.Request
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gateway.ErrorBody(err))
		return
	}
	c.JSON(http.StatusOK, h.envelope.Handle(c.Request.Context(), request))
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "strategy": h.planner.Strategy()})
}

func (h *handlers) activities(c *gin.Context) {
	c.JSON(http.StatusOK, h.planner.Database().ActivityTypes())
}
