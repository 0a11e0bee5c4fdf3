package http

import (
	"strings"

	"mongo-crud-api/internal/user"
	"mongo-crud-api/pkg/response"
)

type createReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" {
		return user.ErrRequiredFields
	}
	return nil
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

type updateReq struct {
	ID    string  `json:"-"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r updateReq) toInput() user.UpdateUserInput {
	return user.UpdateUserInput{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}

type userResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	CreatedAt response.DateTime `json:"createdAt" swaggertype:"string"`
	UpdatedAt response.DateTime `json:"updatedAt" swaggertype:"string"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

func newListResp(users []user.User) []userResp {
	resp := make([]userResp, len(users))
	for i, u := range users {
		resp[i] = newUserResp(u)
	}
	return resp
}
