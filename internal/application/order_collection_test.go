package application

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/microservices-manager/admin-console/internal/domain"
	"github.com/microservices-manager/admin-console/internal/ports"
)

func TestOrderCollection_RefreshFailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ports.NewMockOrderClientPort(ctrl)
	c := NewOrderCollection(mockClient, &stubConfirmer{}, zap.NewNop())

	orders := []domain.Order{{ID: 1, UserID: 1, ProductName: "Widget", Quantity: 3, Price: 9.99, Status: domain.StatusPending}}
	mockClient.EXPECT().List(gomock.Any()).Return(orders, nil)
	mockClient.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() expected transport error")
	}
	if got := c.Items(); !reflect.DeepEqual(got, orders) {
		t.Errorf("Items() = %v, want the pre-failure snapshot %v", got, orders)
	}
	if c.LastError() != "Failed to fetch orders" {
		t.Errorf("LastError() = %q, want %q", c.LastError(), "Failed to fetch orders")
	}
	if c.IsLoading() {
		t.Error("IsLoading() = true after Refresh completed")
	}
}

func TestOrderCollection_RefreshIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ports.NewMockOrderClientPort(ctrl)
	c := NewOrderCollection(mockClient, &stubConfirmer{}, zap.NewNop())

	orders := []domain.Order{
		{ID: 1, UserID: 1, ProductName: "Widget", Quantity: 3, Price: 9.99, Status: domain.StatusPending},
		{ID: 2, UserID: 2, ProductName: "Gadget", Quantity: 1, Price: 24.5, Status: domain.StatusShipped},
	}
	mockClient.EXPECT().List(gomock.Any()).Return(orders, nil).Times(2)

	_ = c.Refresh(context.Background())
	first := c.Items()
	_ = c.Refresh(context.Background())
	second := c.Items()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("back-to-back refreshes diverged: %v vs %v", first, second)
	}
}

// A List response that resolves after a newer refresh began must not
// overwrite the newer snapshot.
func TestOrderCollection_StaleRefreshDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ports.NewMockOrderClientPort(ctrl)
	c := NewOrderCollection(mockClient, &stubConfirmer{}, zap.NewNop())

	stale := []domain.Order{{ID: 1, ProductName: "Old"}}
	fresh := []domain.Order{{ID: 2, ProductName: "New"}}

	ctx := context.Background()
	mockClient.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Order, error) {
		// a second refresh starts and completes while the first List
		// call is still in flight
		if err := c.Refresh(ctx); err != nil {
			t.Fatalf("nested Refresh() unexpected error: %v", err)
		}
		return stale, nil
	})
	mockClient.EXPECT().List(gomock.Any()).Return(fresh, nil)

	_ = c.Refresh(ctx)

	if got := c.Items(); !reflect.DeepEqual(got, fresh) {
		t.Errorf("Items() = %v, want the newer snapshot %v", got, fresh)
	}
	if c.IsLoading() {
		t.Error("IsLoading() = true after both refreshes completed")
	}
}

func TestOrderCollection_MutationsForceRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := domain.OrderPayload{UserID: 1, ProductName: "Widget", Quantity: 3, Price: 9.99, Status: domain.StatusPending}
	created := domain.Order{ID: 5, UserID: 1, ProductName: "Widget", Quantity: 3, Price: 9.99, Status: domain.StatusPending}

	tests := []struct {
		name      string
		mockSetup func(m *ports.MockOrderClientPort)
		call      func(c *OrderCollection) error
	}{
		{
			name: "create",
			mockSetup: func(m *ports.MockOrderClientPort) {
				m.EXPECT().Create(gomock.Any(), payload).Return(&created, nil)
				m.EXPECT().List(gomock.Any()).Return([]domain.Order{created}, nil)
			},
			call: func(c *OrderCollection) error { return c.CreateRecord(context.Background(), payload) },
		},
		{
			name: "update",
			mockSetup: func(m *ports.MockOrderClientPort) {
				m.EXPECT().Update(gomock.Any(), int64(5), payload).Return(&created, nil)
				m.EXPECT().List(gomock.Any()).Return([]domain.Order{created}, nil)
			},
			call: func(c *OrderCollection) error { return c.UpdateRecord(context.Background(), 5, payload) },
		},
		{
			name: "delete",
			mockSetup: func(m *ports.MockOrderClientPort) {
				m.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
				m.EXPECT().List(gomock.Any()).Return([]domain.Order{created}, nil)
			},
			call: func(c *OrderCollection) error { return c.DeleteRecord(context.Background(), 5) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := ports.NewMockOrderClientPort(ctrl)
			c := NewOrderCollection(mockClient, &stubConfirmer{answer: true}, zap.NewNop())
			tt.mockSetup(mockClient)

			if err := tt.call(c); err != nil {
				t.Fatalf("%s unexpected error: %v", tt.name, err)
			}
			// items equal exactly what the follow-up List returned
			if got := c.Items(); !reflect.DeepEqual(got, []domain.Order{created}) {
				t.Errorf("Items() = %v, want the refreshed snapshot", got)
			}
		})
	}
}

func TestOrderCollection_SaveFailureSurfacesServerMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ports.NewMockOrderClientPort(ctrl)
	c := NewOrderCollection(mockClient, &stubConfirmer{}, zap.NewNop())

	payload := domain.OrderPayload{UserID: 99, ProductName: "Widget", Quantity: 1, Price: 1, Status: domain.StatusPending}
	mockClient.EXPECT().Create(gomock.Any(), payload).Return(nil, &ports.APIError{StatusCode: 400, Message: "user does not exist"})

	if err := c.CreateRecord(context.Background(), payload); err == nil {
		t.Fatal("CreateRecord() expected error")
	}
	if c.LastError() != "user does not exist" {
		t.Errorf("LastError() = %q, want the server message", c.LastError())
	}
}
