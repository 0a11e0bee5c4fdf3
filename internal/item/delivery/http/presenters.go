package http

import (
	"strings"

	"mongo-crud-api/internal/item"
	"mongo-crud-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Description) == "" {
		return item.ErrRequiredFields
	}
	return nil
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// validate is a no-op: field rules for updates live at the schema boundary.
func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CreatedAt   response.DateTime `json:"createdAt" swaggertype:"string"`
	UpdatedAt   response.DateTime `json:"updatedAt" swaggertype:"string"`
}

func newItemResp(i item.Item) itemResp {
	return itemResp{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		CreatedAt:   response.DateTime(i.CreatedAt),
		UpdatedAt:   response.DateTime(i.UpdatedAt),
	}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
