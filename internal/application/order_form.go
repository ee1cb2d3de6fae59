package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/microservices-manager/admin-console/internal/domain"
)

// OrderDraft is the string-typed editable projection of an order. Numeric
// fields stay text until submission so intermediate input is never rejected
// while typing.
type OrderDraft struct {
	UserID      string
	ProductName string
	Quantity    string
	Price       string
	Status      string
}

func newOrderDraft() OrderDraft {
	return OrderDraft{Quantity: "1", Status: string(domain.StatusPending)}
}

// OrderForm owns the transient edit session for the order subsystem.
type OrderForm struct {
	collection *OrderCollection

	mode     FormMode
	targetID int64
	draft    OrderDraft
}

func NewOrderForm(collection *OrderCollection) *OrderForm {
	return &OrderForm{collection: collection}
}

func (f *OrderForm) Mode() FormMode    { return f.mode }
func (f *OrderForm) TargetID() int64   { return f.targetID }
func (f *OrderForm) Draft() OrderDraft { return f.draft }

func (f *OrderForm) OpenForCreate() {
	f.mode = ModeCreate
	f.targetID = 0
	f.draft = newOrderDraft()
}

// OpenForEdit string-coerces every editable field of the record into the
// draft; numbers take their shortest text representation.
func (f *OrderForm) OpenForEdit(o domain.Order) {
	f.mode = ModeEdit
	f.targetID = o.ID
	f.draft = OrderDraft{
		UserID:      strconv.FormatInt(o.UserID, 10),
		ProductName: o.ProductName,
		Quantity:    strconv.FormatInt(o.Quantity, 10),
		Price:       strconv.FormatFloat(o.Price, 'f', -1, 64),
		Status:      string(o.Status),
	}
}

func (f *OrderForm) SetField(name, value string) error {
	switch name {
	case "userId":
		f.draft.UserID = value
	case "productName":
		f.draft.ProductName = value
	case "quantity":
		f.draft.Quantity = value
	case "price":
		f.draft.Price = value
	case "status":
		f.draft.Status = value
	default:
		return fmt.Errorf("unknown order field %q", name)
	}
	return nil
}

// Submit validates and coerces the draft into a typed payload, then hands it
// to the collection controller. Success closes the session, leaving the
// controller's error state to the follow-up refresh; failure keeps the
// session open.
func (f *OrderForm) Submit(ctx context.Context) error {
	if f.mode == ModeNone {
		return &ValidationError{Msg: "no edit session open"}
	}
	payload, err := f.payload()
	if err != nil {
		return err
	}

	if f.mode == ModeCreate {
		err = f.collection.CreateRecord(ctx, payload)
	} else {
		err = f.collection.UpdateRecord(ctx, f.targetID, payload)
	}
	if err != nil {
		return err
	}

	f.reset()
	return nil
}

// Cancel discards the session unconditionally.
func (f *OrderForm) Cancel() {
	f.reset()
}

func (f *OrderForm) reset() {
	f.mode = ModeNone
	f.targetID = 0
	f.draft = newOrderDraft()
}

func (f *OrderForm) payload() (domain.OrderPayload, error) {
	if f.draft.UserID == "" {
		return domain.OrderPayload{}, &ValidationError{Msg: "customer is required"}
	}
	userID, err := strconv.ParseInt(f.draft.UserID, 10, 64)
	if err != nil {
		return domain.OrderPayload{}, &ValidationError{Msg: "customer id must be a whole number"}
	}
	if f.draft.ProductName == "" {
		return domain.OrderPayload{}, &ValidationError{Msg: "product name is required"}
	}
	if f.draft.Quantity == "" {
		return domain.OrderPayload{}, &ValidationError{Msg: "quantity is required"}
	}
	quantity, err := strconv.ParseInt(f.draft.Quantity, 10, 64)
	if err != nil {
		return domain.OrderPayload{}, &ValidationError{Msg: "quantity must be a whole number"}
	}
	if quantity < 1 {
		return domain.OrderPayload{}, &ValidationError{Msg: "quantity must be at least 1"}
	}
	if f.draft.Price == "" {
		return domain.OrderPayload{}, &ValidationError{Msg: "price is required"}
	}
	price, err := strconv.ParseFloat(f.draft.Price, 64)
	if err != nil {
		return domain.OrderPayload{}, &ValidationError{Msg: "price must be a number"}
	}
	if price < 0 {
		return domain.OrderPayload{}, &ValidationError{Msg: "price must not be negative"}
	}
	status, err := domain.ParseOrderStatus(f.draft.Status)
	if err != nil {
		return domain.OrderPayload{}, &ValidationError{Msg: err.Error()}
	}

	return domain.OrderPayload{
		UserID:      userID,
		ProductName: f.draft.ProductName,
		Quantity:    quantity,
		Price:       price,
		Status:      status,
	}, nil
}
