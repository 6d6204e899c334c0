package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
	"relationship-os/pkg/response"
)

// Create godoc
// @Summary     Create a person
// @Description Creates a new contact for the authenticated user.
// @Tags        Person
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Person data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/persons [POST]
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
		h.l.Errorf(ctx, "person.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List persons
// @Description Returns a paginated list of the user's contacts.
// @Tags        Person
// @Accept      json
// @Produce     json
// @Param       q      query string false "Substring match on name/phone/email"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/persons [GET]
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
		h.l.Errorf(ctx, "person.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get person detail
// @Description Returns a single contact by ID.
// @Tags        Person
// @Accept      json
// @Produce     json
// @Param       id path string true "Person ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/persons/{id} [GET]
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
		h.l.Errorf(ctx, "person.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a person
// @Description Partially updates an existing contact.
// @Tags        Person
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Person ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/persons/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
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

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "person.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a person
// @Description Permanently removes a contact by ID.
// @Tags        Person
// @Accept      json
// @Produce     json
// @Param       id path string true "Person ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/persons/{id} [DELETE]
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
		h.l.Errorf(ctx, "person.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Search godoc
// @Summary     Search for a person
// @Description Finds a contact by phone, email or name, most reliable field first.
// @Tags        Person
// @Accept      json
// @Produce     json
// @Param       phone query string false "Phone number"
// @Param       email query string false "Email address"
// @Param       name  query string false "Exact name"
// @Success     200 {object} searchResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/persons/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "person.http.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
