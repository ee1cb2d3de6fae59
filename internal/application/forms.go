package application

// FormMode is the edit-session state shared by both form units. Exactly one
// session is active per subsystem; opening a new one discards any prior
// uncommitted draft. Create and Edit never transition into each other
// directly, only through None.
type FormMode int

const (
	ModeNone FormMode = iota
	ModeCreate
	ModeEdit
)

func (m FormMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "none"
	}
}
