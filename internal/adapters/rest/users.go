package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/microservices-manager/admin-console/internal/domain"
	"github.com/microservices-manager/admin-console/internal/ports"
)

type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) ports.UserClientPort {
	return &UserClient{c: c}
}

func (u *UserClient) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := u.c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UserClient) Get(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{}
	if err := u.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserClient) Create(ctx context.Context, payload domain.UserPayload) (*domain.User, error) {
	user := &domain.User{}
	if err := u.c.do(ctx, http.MethodPost, "/users", payload, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserClient) Update(ctx context.Context, id int64, payload domain.UserPayload) (*domain.User, error) {
	user := &domain.User{}
	if err := u.c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), payload, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserClient) Delete(ctx context.Context, id int64) error {
	return u.c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
