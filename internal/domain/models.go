package domain

import "fmt"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UserPayload is the mutation body for creating or updating a user.
// The server assigns IDs, so a payload never carries one.
type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses returns every valid status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}
}

// ParseOrderStatus validates a raw status string against the known set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	ProductName string      `json:"productName"`
	Quantity    int64       `json:"quantity"`
	Price       float64     `json:"price"`
	Status      OrderStatus `json:"status"`
}

// PriceLabel renders the price the way the order table displays it.
func (o Order) PriceLabel() string {
	return fmt.Sprintf("$%.2f", o.Price)
}

// OrderPayload is the mutation body for creating or updating an order.
type OrderPayload struct {
	UserID      int64       `json:"userId"`
	ProductName string      `json:"productName"`
	Quantity    int64       `json:"quantity"`
	Price       float64     `json:"price"`
	Status      OrderStatus `json:"status"`
}
