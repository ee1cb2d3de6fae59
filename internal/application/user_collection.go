package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/microservices-manager/admin-console/internal/domain"
	"github.com/microservices-manager/admin-console/internal/ports"
)

// UserCollection owns the in-memory snapshot of the remote user collection.
// After every confirmed mutation the snapshot is re-derived from a fresh List
// call, never patched locally, so the displayed collection cannot diverge
// from server state once a mutation is acknowledged. The extra round trip per
// mutation is the documented cost of that policy.
type UserCollection struct {
	client    ports.UserClientPort
	confirmer ports.ConfirmerPort
	log       *zap.Logger

	mu      sync.Mutex
	items   []domain.User
	loading bool
	lastErr string
	gen     uint64
}

func NewUserCollection(client ports.UserClientPort, confirmer ports.ConfirmerPort, log *zap.Logger) *UserCollection {
	return &UserCollection{client: client, confirmer: confirmer, log: log}
}

// Items returns a copy of the current snapshot in server response order.
func (c *UserCollection) Items() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.User, len(c.items))
	copy(out, c.items)
	return out
}

func (c *UserCollection) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *UserCollection) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Refresh replaces the snapshot wholesale from a fresh List call. On failure
// the snapshot is left untouched and lastErr records the failure. Each call
// bumps the refresh generation; a List response that resolves after a newer
// Refresh began is discarded instead of overwriting newer state.
func (c *UserCollection) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	users, err := c.client.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.log.Debug("discarding superseded user refresh", zap.Uint64("generation", gen))
		return err
	}
	c.loading = false
	if err != nil {
		c.lastErr = errorMessage(err, "Failed to fetch users")
		return err
	}
	c.items = users
	c.lastErr = ""
	return nil
}

// CreateRecord sends the payload and, on success, re-fetches the collection
// so the snapshot carries the server-assigned id and any normalization. A
// failed follow-up refresh is recorded in lastErr but does not fail the
// mutation; the returned error reflects the mutation alone.
func (c *UserCollection) CreateRecord(ctx context.Context, payload domain.UserPayload) error {
	if _, err := c.client.Create(ctx, payload); err != nil {
		c.setError(errorMessage(err, "Failed to save user"))
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

func (c *UserCollection) UpdateRecord(ctx context.Context, id int64, payload domain.UserPayload) error {
	if _, err := c.client.Update(ctx, id, payload); err != nil {
		c.setError(errorMessage(err, "Failed to save user"))
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

// DeleteRecord asks the operator for confirmation before issuing the request.
// Declining issues no request and leaves every piece of state unchanged.
func (c *UserCollection) DeleteRecord(ctx context.Context, id int64) error {
	if !c.confirmer.Confirm("Are you sure you want to delete this user?") {
		return nil
	}
	if err := c.client.Delete(ctx, id); err != nil {
		c.setError(errorMessage(err, "Failed to delete user"))
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

func (c *UserCollection) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = msg
}
