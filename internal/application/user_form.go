package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/microservices-manager/admin-console/internal/domain"
)

// UserDraft is the string-typed editable projection of a user. Fields hold
// whatever the operator typed; nothing is validated until submission.
type UserDraft struct {
	Name  string
	Email string
	Phone string
}

// UserForm owns the transient edit session for the user subsystem. It never
// touches the collection snapshot directly; all persistence goes through the
// collection controller.
type UserForm struct {
	collection *UserCollection

	mode     FormMode
	targetID int64
	draft    UserDraft
}

func NewUserForm(collection *UserCollection) *UserForm {
	return &UserForm{collection: collection}
}

func (f *UserForm) Mode() FormMode   { return f.mode }
func (f *UserForm) TargetID() int64  { return f.targetID }
func (f *UserForm) Draft() UserDraft { return f.draft }

func (f *UserForm) OpenForCreate() {
	f.mode = ModeCreate
	f.targetID = 0
	f.draft = UserDraft{}
}

// OpenForEdit projects every editable field of the record into the draft.
// Absent optional fields become the empty string.
func (f *UserForm) OpenForEdit(u domain.User) {
	f.mode = ModeEdit
	f.targetID = u.ID
	f.draft = UserDraft{Name: u.Name, Email: u.Email, Phone: u.Phone}
}

func (f *UserForm) SetField(name, value string) error {
	switch name {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "phone":
		f.draft.Phone = value
	default:
		return fmt.Errorf("unknown user field %q", name)
	}
	return nil
}

// Submit validates the draft, builds the payload and hands it to the
// collection controller. On success the session closes and the follow-up
// refresh owns the controller's error state; on failure the session stays
// open so in-progress edits are preserved.
func (f *UserForm) Submit(ctx context.Context) error {
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
func (f *UserForm) Cancel() {
	f.reset()
}

func (f *UserForm) reset() {
	f.mode = ModeNone
	f.targetID = 0
	f.draft = UserDraft{}
}

func (f *UserForm) payload() (domain.UserPayload, error) {
	if f.draft.Name == "" {
		return domain.UserPayload{}, &ValidationError{Msg: "name is required"}
	}
	if f.draft.Email == "" {
		return domain.UserPayload{}, &ValidationError{Msg: "email is required"}
	}
	if !strings.Contains(f.draft.Email, "@") {
		return domain.UserPayload{}, &ValidationError{Msg: "email must contain '@'"}
	}
	return domain.UserPayload{
		Name:  f.draft.Name,
		Email: f.draft.Email,
		Phone: f.draft.Phone,
	}, nil
}
