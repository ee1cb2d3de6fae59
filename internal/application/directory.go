package application

import (
	"fmt"

	"github.com/microservices-manager/admin-console/internal/domain"
)

// ResolveUserDisplayName looks up an order's userId in a user snapshot and
// returns the matching name, or a fallback label built from the raw id. Pure
// lookup over whatever snapshot the caller holds: it never fetches, so an
// unloaded or stale snapshot degrades to the fallback rather than an error.
func ResolveUserDisplayName(users []domain.User, userID int64) string {
	for _, u := range users {
		if u.ID == userID {
			return u.Name
		}
	}
	return fmt.Sprintf("User #%d", userID)
}

// OrderRow is one row of the order table with the customer name joined in.
type OrderRow struct {
	Order    domain.Order
	UserName string
}

// BuildOrderRows joins two read-only snapshots into the derived order view.
// Recomputed on every render, never cached.
func BuildOrderRows(users []domain.User, orders []domain.Order) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderRow{Order: o, UserName: ResolveUserDisplayName(users, o.UserID)})
	}
	return rows
}

// CustomerOption is one entry of the order form's customer picker.
type CustomerOption struct {
	ID    int64
	Label string
}

// CustomerOptions renders a user snapshot as picker entries, "Name (email)".
func CustomerOptions(users []domain.User) []CustomerOption {
	opts := make([]CustomerOption, 0, len(users))
	for _, u := range users {
		opts = append(opts, CustomerOption{ID: u.ID, Label: fmt.Sprintf("%s (%s)", u.Name, u.Email)})
	}
	return opts
}
