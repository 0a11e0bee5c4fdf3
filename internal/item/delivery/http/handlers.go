package http

import (
	"github.com/gin-gonic/gin"

	"mongo-crud-api/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item with the provided name and description.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body     createReq true "Item data"
// @Success     201  {object} response.Resp{data=itemResp}
// @Failure     400  {object} response.Resp "Missing or invalid fields"
// @Failure     500  {object} response.Resp "Server Error"
// @Router      /api/items [POST]
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

	response.Created(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns every item, newest first.
// @Tags        Items
// @Produce     json
// @Success     200 {object} response.Resp{data=[]itemResp}
// @Failure     500 {object} response.Resp "Server Error"
// @Router      /api/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.List", err))
		return
	}

	response.List(c, h.newListResp(output), output.Count)
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id  path     string true "Item ID"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Server Error"
// @Router      /api/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.Detail", err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Updates an existing item. All fields are optional (partial update).
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path     string    true "Item ID"
// @Param       body body     updateReq true "Fields to update"
// @Success     200  {object} response.Resp{data=itemResp}
// @Failure     400  {object} response.Resp "Invalid fields"
// @Failure     404  {object} response.Resp "Item not found"
// @Failure     500  {object} response.Resp "Server Error"
// @Router      /api/items/{id} [PUT]
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

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Produce     json
// @Param       id  path     string true "Item ID"
// @Success     200 {object} response.Resp "data is an empty object"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Server Error"
// @Router      /api/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(ctx, "uc.Delete", err))
		return
	}

	response.OK(c, gin.H{})
}
