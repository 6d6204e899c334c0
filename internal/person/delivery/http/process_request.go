package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "relationship-os/pkg/errors"
)

// processCreateReq binds and validates the create person request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list persons query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update person request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}

// processSearchReq binds and validates the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
