package registry

import (
	"log/slog"
	"sync"
)

// Notification titles.
const (
	TitleDatabaseError = "Database Error"
	TitleInputError    = "Input Error"
)

// Notifier receives failures that the registry has absorbed.
type Notifier interface {
	Notify(title string, err error)
}

// LogNotifier writes notifications as structured error logs.
type LogNotifier struct {
	Logger *slog.Logger // defaults to slog.Default()
}

// Notify logs err at error level.
func (n LogNotifier) Notify(title string, err error) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(title, "error", err)
}

// Notification is one recorded call to Notify.
type Notification struct {
	Title string
	Err   error
}

// Recorder keeps every notification in memory. Useful in tests and for
// batch operations that report failures at the end.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records the notification.
func (r *Recorder) Notify(title string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Title: title, Err: err})
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}
