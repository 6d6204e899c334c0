package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
	"relationship-os/pkg/response"
)

// Add godoc
// @Summary     Whitelist an email
// @Description Adds an email to the beta whitelist.
// @Tags        Beta
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Entry data"
// @Success     200 {object} addResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - already whitelisted"
// @Router      /api/v1/admin/beta [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "beta.http.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddResp(output))
}

// List godoc
// @Summary     List whitelist entries
// @Description Returns all beta whitelist entries.
// @Tags        Beta
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/admin/beta [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "beta.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Remove godoc
// @Summary     Remove a whitelist entry
// @Description Removes an email from the beta whitelist.
// @Tags        Beta
// @Accept      json
// @Produce     json
// @Param       email path string true "Email"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/beta/{email} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.uc.Remove(ctx, sc, email); err != nil {
		h.l.Errorf(ctx, "beta.http.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
