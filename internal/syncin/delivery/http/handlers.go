package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
	"relationship-os/pkg/response"
)

// Push godoc
// @Summary     Ingest a sync batch
// @Description Accepts a batch of interactions pushed by a local sync agent.
// @Description The raw body must be signed with the shared secret
// @Description (X-Sync-Signature: sha256=<hex>). Items are deduped on
// @Description (source, external_id); missing conversation dates are inferred
// @Description from transcripts.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       X-Sync-Signature header string  true "HMAC-SHA256 of the raw body"
// @Param       body             body   pushReq true "Batch payload"
// @Success     200 {object} pushResp
// @Failure     401 {object} response.Resp "Invalid Signature"
// @Failure     429 {object} response.Resp "Rate Limited"
// @Router      /api/v1/sync/push [POST]
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.cfg.Enabled {
		response.Error(c, errDisabled)
		return
	}

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.validator.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "syncin.http.Push ip: %v", err)
		response.Error(c, errIPDenied)
		return
	}

	req, err := h.processPushReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.validator.CheckRateLimit(req.Source); err != nil {
		h.l.Warnf(ctx, "syncin.http.Push rate: %v", err)
		response.Error(c, errRateLimit)
		return
	}

	output, err := h.uc.Push(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "syncin.http.Push: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPushResp(output))
}

// Transcribe godoc
// @Summary     Transcribe and ingest a recording
// @Description Accepts a single audio recording pushed by a local sync agent,
// @Description transcribes it, and stores the transcript as an interaction.
// @Description The raw body must be signed with the shared secret
// @Description (X-Sync-Signature: sha256=<hex>). Recordings are deduped on
// @Description (source, external_id); a missing conversation date is inferred
// @Description from the transcript.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       X-Sync-Signature header string        true "HMAC-SHA256 of the raw body"
// @Param       body             body   transcribeReq true "Recording payload"
// @Success     200 {object} transcribeResp
// @Failure     401 {object} response.Resp "Invalid Signature"
// @Failure     429 {object} response.Resp "Rate Limited"
// @Failure     502 {object} response.Resp "Transcription Failed"
// @Router      /api/v1/sync/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.cfg.Enabled {
		response.Error(c, errDisabled)
		return
	}

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.validator.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "syncin.http.Transcribe ip: %v", err)
		response.Error(c, errIPDenied)
		return
	}

	req, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.validator.CheckRateLimit(req.Source); err != nil {
		h.l.Warnf(ctx, "syncin.http.Transcribe rate: %v", err)
		response.Error(c, errRateLimit)
		return
	}

	output, err := h.uc.Transcribe(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "syncin.http.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranscribeResp(output))
}

// ListBatches godoc
// @Summary     List sync batches
// @Description Returns recent sync batch records, newest first. Admin only.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       source  query string false "Filter by agent source"
// @Param       user_id query string false "Filter by user"
// @Param       limit   query int    false "Page size (default: 20)"
// @Success     200 {object} listBatchesResp
// @Router      /api/v1/admin/sync/batches [GET]
func (h *handler) ListBatches(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListBatchesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListBatches(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "syncin.http.ListBatches: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListBatchesResp(output))
}
