package http

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// Agent request headers.
const (
	HeaderSignature = "X-Sync-Signature"
)

// processPushReq reads the raw body (needed for signature verification),
// verifies the HMAC, then decodes the payload.
func (h *handler) processPushReq(c *gin.Context) (pushReq, error) {
	var req pushReq

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPushBodyBytes))
	if err != nil {
		return req, err
	}
	// Restore the body so later middleware/handlers are not surprised.
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if err := h.validator.ValidateSignature(body, c.GetHeader(HeaderSignature)); err != nil {
		return req, errSignature
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTranscribeReq reads the raw body (needed for signature verification),
// verifies the HMAC, then decodes the payload. Transcribe bodies get a larger
// cap than push bodies since they carry base64 audio.
func (h *handler) processTranscribeReq(c *gin.Context) (transcribeReq, error) {
	var req transcribeReq

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxTranscribeBodyBytes))
	if err != nil {
		return req, err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if err := h.validator.ValidateSignature(body, c.GetHeader(HeaderSignature)); err != nil {
		return req, errSignature
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, err
	}
	return req, nil
}

// processListBatchesReq binds the admin batch listing query parameters.
func (h *handler) processListBatchesReq(c *gin.Context) (listBatchesReq, error) {
	var req listBatchesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
