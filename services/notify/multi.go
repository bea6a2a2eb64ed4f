package notifysvc

import "github.com/Khadar01822/pms-dashboard/core"

type multiNotifier []core.Notifier

var _ core.Notifier = (multiNotifier)(nil)

// NewMultiNotifier fans every notification out to all the given notifiers.
func NewMultiNotifier(notifiers ...core.Notifier) core.Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m multiNotifier) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

func (m multiNotifier) Info(msg string) {
	for _, n := range m {
		n.Info(msg)
	}
}
