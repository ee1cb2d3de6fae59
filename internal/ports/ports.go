package ports

import (
	"context"
	"fmt"

	"github.com/microservices-manager/admin-console/internal/domain"
)

// APIError is a non-2xx response from the remote API. Message carries the
// server-supplied {"message": ...} body when one was present, else it is
// empty and callers fall back to their own wording.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// UserClientPort issues CRUD requests against the remote user collection.
// Each call is a single request/response round trip with no retries and no
// caching; implementations decode the API envelope and surface the server's
// error message when one is present.
type UserClientPort interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, payload domain.UserPayload) (*domain.User, error)
	Update(ctx context.Context, id int64, payload domain.UserPayload) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// OrderClientPort issues CRUD requests against the remote order collection.
type OrderClientPort interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	Create(ctx context.Context, payload domain.OrderPayload) (*domain.Order, error)
	Update(ctx context.Context, id int64, payload domain.OrderPayload) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

// ConfirmerPort asks the operator to approve a destructive action before the
// request is issued. Declining must leave all state untouched.
type ConfirmerPort interface {
	Confirm(prompt string) bool
}
