package core

import "github.com/pkg/errors"

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelInfo    NotificationLevel = "info"
)

// Notification is a transient user-facing message surfaced after a network
// call settles.
type Notification struct {
	Level   NotificationLevel
	Message string
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// NotifyError reports err through n, preferring a server-provided message
// over the generic fallback.
func NotifyError(n Notifier, err error, fallback string) {
	if apiErr, ok := errors.Cause(err).(*APIError); ok && apiErr.Message != "" {
		n.Error(apiErr.Message)
		return
	}
	n.Error(fallback)
}
