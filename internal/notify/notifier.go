// Package notify is the notification collaborator: the engine decides what
// fires, this package only delivers it.
package notify

import (
	"fmt"
	"io"
	"time"
)

// Notifier delivers a titled message to the user.
type Notifier interface {
	Notify(title, body string) error
}

// WriterNotifier writes notifications as timestamped lines to an io.Writer,
// with a BEL so task deadlines can ring the terminal.
type WriterNotifier struct {
	w    io.Writer
	bell bool
}

// NewWriterNotifier creates a WriterNotifier. With bell set, each
// notification is prefixed with an audible terminal bell.
func NewWriterNotifier(w io.Writer, bell bool) *WriterNotifier {
	return &WriterNotifier{w: w, bell: bell}
}

func (n *WriterNotifier) Notify(title, body string) error {
	if n.bell {
		fmt.Fprint(n.w, "\a")
	}
	ts := time.Now().Format("15:04")
	_, err := fmt.Fprintf(n.w, "[%s] %s — %s\n", ts, title, body)
	return err
}

// NoopNotifier discards all notifications. Useful for tests.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string, string) error { return nil }
