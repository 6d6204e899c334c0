package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
	"relationship-os/pkg/response"
)

// Create godoc
// @Summary     Log an interaction
// @Description Logs a new interaction with a person. When occurred_at is
// @Description omitted and a transcript is present, the occurrence date is
// @Description inferred from the transcript.
// @Tags        Interaction
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Interaction data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Person Not Found"
// @Router      /api/v1/interactions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "interaction.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List interactions
// @Description Returns a paginated list of interactions, optionally filtered
// @Description by person and type.
// @Tags        Interaction
// @Accept      json
// @Produce     json
// @Param       person_id query string false "Filter by person"
// @Param       type      query string false "Filter by type (meeting/call/text/email/note)"
// @Param       limit     query int    false "Page size (default: 20)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Router      /api/v1/interactions [GET]
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
		h.l.Errorf(ctx, "interaction.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get interaction detail
// @Description Returns a single interaction by ID.
// @Tags        Interaction
// @Accept      json
// @Produce     json
// @Param       id path string true "Interaction ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/interactions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "interaction.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateFord godoc
// @Summary     Update FORD notes
// @Description Partially updates the summary and FORD notes of an interaction.
// @Tags        Interaction
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Interaction ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/interactions/{id} [PUT]
func (h *handler) UpdateFord(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateFord(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "interaction.http.UpdateFord: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an interaction
// @Description Permanently removes an interaction by ID.
// @Tags        Interaction
// @Accept      json
// @Produce     json
// @Param       id path string true "Interaction ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/interactions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "interaction.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SuggestFollowUp godoc
// @Summary     Suggest a follow-up
// @Description Generates an AI follow-up suggestion for an interaction,
// @Description resolves the suggested timing to a date and, when a calendar
// @Description is configured, creates a reminder event.
// @Tags        Interaction
// @Accept      json
// @Produce     json
// @Param       id path string true "Interaction ID"
// @Success     200 {object} followUpResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "No suggestion produced"
// @Router      /api/v1/interactions/{id}/follow-up [POST]
func (h *handler) SuggestFollowUp(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.SuggestFollowUp(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "interaction.http.SuggestFollowUp: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFollowUpResp(output))
}
