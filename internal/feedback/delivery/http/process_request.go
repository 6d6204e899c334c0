package http

import (
	"github.com/gin-gonic/gin"
)

// processSubmitReq binds and validates the submit feedback request body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the admin listing query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
