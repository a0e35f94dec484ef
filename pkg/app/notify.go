package app

// Level grades a Notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a short message for the user. Err is set for failures.
type Notification struct {
	Level   Level
	Message string
	Err     error
}

// ConfirmFunc asks whether to save unsaved changes before moving on. True
// means save first; false means discard them.
type ConfirmFunc func(message string) bool

// NotifyFunc shows n to the user. It must not block and must not call back
// into the Session.
type NotifyFunc func(n Notification)

const (
	confirmNewEntry = "You have unsaved changes. Save them before starting a new entry?"
	confirmSelect   = "You have unsaved changes. Save them before opening another entry?"
)
