package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
	"relationship-os/pkg/response"
)

// Submit godoc
// @Summary     Submit feedback
// @Description Records a piece of in-app feedback from the calling user.
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Feedback"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/feedback [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "feedback.http.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// List godoc
// @Summary     List feedback
// @Description Returns submitted feedback, newest first. Admin only.
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category (bug/feature/general)"
// @Param       limit    query int    false "Page size (default: 20)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Router      /api/v1/admin/feedback [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "feedback.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
