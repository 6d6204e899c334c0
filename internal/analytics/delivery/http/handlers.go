package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"relationship-os/internal/analytics"
	"relationship-os/internal/middleware"
	pkgErrors "relationship-os/pkg/errors"
	"relationship-os/pkg/response"
)

// TrackEvent godoc
// @Summary     Record a usage event
// @Description Records a client-reported analytics event.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       body body trackReq true "Event data"
// @Success     200 {object} trackResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/analytics/events [POST]
func (h *handler) TrackEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req trackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.TrackEvent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.http.TrackEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTrackResp(output))
}

// Summary godoc
// @Summary     Usage summary
// @Description Aggregates event counts by name and day over the last N days.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       days query int false "Window in days (default 7, max 90)"
// @Success     200 {object} summaryResp
// @Router      /api/v1/admin/analytics/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	days := 0
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, pkgErrors.NewHTTPError(400, "days must be an integer"))
			return
		}
		days = parsed
	}

	output, err := h.uc.Summary(ctx, sc, days)
	if err != nil {
		h.l.Errorf(ctx, "analytics.http.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case analytics.ErrNameRequired:
		return pkgErrors.NewHTTPError(400, "event name is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
