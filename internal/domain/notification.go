package domain

// Severity classifies a notification for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient user-facing message. It self-removes after a
// fixed delay unless dismissed earlier.
// swagger:model Notification
type Notification struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier is the ephemeral message queue for user feedback.
// Push schedules automatic removal; Remove is idempotent and cancels the
// pending removal for the given id.
type Notifier interface {
	Push(message string, severity Severity) *Notification
	Remove(id string)
	Active() []*Notification
}
