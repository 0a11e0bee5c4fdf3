package http

import (
	"github.com/gin-gonic/gin"

	"mongo-crud-api/pkg/response"
)

// List godoc
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Success     200 {object} response.Resp{data=[]userResp}
// @Failure     500 {object} response.Resp "Server Error"
// @Router      /api/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.List", err))
		return
	}

	response.List(c, newListResp(output.Users), output.Count)
}

// Create godoc
// @Summary     Create a user
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body     createReq true "User data"
// @Success     201  {object} response.Resp{data=userResp}
// @Failure     400  {object} response.Resp "Name and email are required"
// @Failure     500  {object} response.Resp "Server Error"
// @Router      /api/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(ctx, "processCreateReq", err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.Create", err))
		return
	}

	response.Created(c, newUserResp(output.User))
}

// Detail godoc
// @Summary     Get a user
// @Tags        Users
// @Produce     json
// @Param       id  path     string true "User ID"
// @Success     200 {object} response.Resp{data=userResp}
// @Failure     404 {object} response.Resp "User not found"
// @Failure     500 {object} response.Resp "Server Error"
// @Router      /api/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.Detail", err))
		return
	}

	response.OK(c, newUserResp(output.User))
}

// Update godoc
// @Summary     Update a user
// @Description Partial update; omitted fields keep their value.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id   path     string    true "User ID"
// @Param       body body     updateReq true "Fields to update"
// @Success     200  {object} response.Resp{data=userResp}
// @Failure     400  {object} response.Resp "Invalid fields"
// @Failure     404  {object} response.Resp "User not found"
// @Failure     500  {object} response.Resp "Server Error"
// @Router      /api/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(ctx, "processUpdateReq", err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.Update", err))
		return
	}

	response.Message(c, msgUpdated, newUserResp(output.User))
}

// Delete godoc
// @Summary     Delete a user
// @Tags        Users
// @Produce     json
// @Param       id  path     string true "User ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "User not found"
// @Failure     500 {object} response.Resp "Server Error"
// @Router      /api/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(ctx, "uc.Delete", err))
		return
	}

	response.Message(c, msgDeleted, nil)
}
