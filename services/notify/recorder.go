package notifysvc

import (
	"sync"

	"github.com/Khadar01822/pms-dashboard/core"
)

// Recorder keeps notifications until they are drained. The web layer drains
// it on each page render to show them as toasts; tests use it to assert on
// what an action reported.
type Recorder struct {
	mu            sync.Mutex
	notifications []core.Notification
}

var _ core.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level core.NotificationLevel, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, core.Notification{Level: level, Message: msg})
}

func (r *Recorder) Success(msg string) { r.record(core.LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.record(core.LevelError, msg) }
func (r *Recorder) Info(msg string)    { r.record(core.LevelInfo, msg) }

// Drain returns all pending notifications and clears them.
func (r *Recorder) Drain() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notifications
	r.notifications = nil
	return out
}

// Peek returns pending notifications without clearing them.
func (r *Recorder) Peek() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}
