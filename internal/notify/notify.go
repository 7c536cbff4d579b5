// Package notify defines the transient user-notification boundary. The
// wizard core reports every logical outcome through a Notifier exactly
// once; how notifications are displayed is the caller's concern.
package notify

import "time"

// Severity distinguishes routine outcomes from destructive or failed ones.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

// Notification is one transient toast.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
	At          time.Time
}

// Notifier receives outcome notifications.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to the Notifier interface.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Recorder is a Notifier that buffers notifications until drained. The TUI
// hands one to the exporter and turns the drained entries into toasts;
// tests read it directly.
type Recorder struct {
	buf []Notification
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	r.buf = append(r.buf, n)
}

// Drain returns the buffered notifications and clears the buffer.
func (r *Recorder) Drain() []Notification {
	out := r.buf
	r.buf = nil
	return out
}

// Len reports the number of buffered notifications.
func (r *Recorder) Len() int { return len(r.buf) }
