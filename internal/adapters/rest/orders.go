package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/microservices-manager/admin-console/internal/domain"
	"github.com/microservices-manager/admin-console/internal/ports"
)

type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) ports.OrderClientPort {
	return &OrderClient{c: c}
}

func (o *OrderClient) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderClient) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order := &domain.Order{}
	if err := o.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *OrderClient) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderClient) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/status/%s", status), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderClient) Create(ctx context.Context, payload domain.OrderPayload) (*domain.Order, error) {
	order := &domain.Order{}
	if err := o.c.do(ctx, http.MethodPost, "/orders", payload, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *OrderClient) Update(ctx context.Context, id int64, payload domain.OrderPayload) (*domain.Order, error) {
	order := &domain.Order{}
	if err := o.c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), payload, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *OrderClient) Delete(ctx context.Context, id int64) error {
	return o.c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}
