package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/microservices-manager/admin-console/internal/domain"
	"github.com/microservices-manager/admin-console/internal/ports"
)

// OrderCollection owns the in-memory snapshot of the remote order collection.
// It mirrors UserCollection: wholesale replace on refresh, forced re-fetch
// after every confirmed mutation, generation token to discard superseded
// refresh responses.
type OrderCollection struct {
	client    ports.OrderClientPort
	confirmer ports.ConfirmerPort
	log       *zap.Logger

	mu      sync.Mutex
	items   []domain.Order
	loading bool
	lastErr string
	gen     uint64
}

func NewOrderCollection(client ports.OrderClientPort, confirmer ports.ConfirmerPort, log *zap.Logger) *OrderCollection {
	return &OrderCollection{client: client, confirmer: confirmer, log: log}
}

// Items returns a copy of the current snapshot in server response order.
func (c *OrderCollection) Items() []domain.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Order, len(c.items))
	copy(out, c.items)
	return out
}

func (c *OrderCollection) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *OrderCollection) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *OrderCollection) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	orders, err := c.client.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.log.Debug("discarding superseded order refresh", zap.Uint64("generation", gen))
		return err
	}
	c.loading = false
	if err != nil {
		c.lastErr = errorMessage(err, "Failed to fetch orders")
		return err
	}
	c.items = orders
	c.lastErr = ""
	return nil
}

func (c *OrderCollection) CreateRecord(ctx context.Context, payload domain.OrderPayload) error {
	if _, err := c.client.Create(ctx, payload); err != nil {
		c.setError(errorMessage(err, "Failed to save order"))
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

func (c *OrderCollection) UpdateRecord(ctx context.Context, id int64, payload domain.OrderPayload) error {
	if _, err := c.client.Update(ctx, id, payload); err != nil {
		c.setError(errorMessage(err, "Failed to save order"))
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

// DeleteRecord asks the operator for confirmation before issuing the request.
func (c *OrderCollection) DeleteRecord(ctx context.Context, id int64) error {
	if !c.confirmer.Confirm("Are you sure you want to delete this order?") {
		return nil
	}
	if err := c.client.Delete(ctx, id); err != nil {
		c.setError(errorMessage(err, "Failed to delete order"))
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

func (c *OrderCollection) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = msg
}
