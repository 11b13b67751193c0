package gridview

import (
	"fmt"
	"log/slog"
)

// NoticeKind classifies a user-visible notice.
type NoticeKind uint8

const (
	// NoticeNone means there is nothing to tell the user.
	NoticeNone NoticeKind = iota

	// NoticeNoTouches is raised by a move event that carries no touches.
	NoticeNoTouches

	// NoticeUnsupportedGesture is raised by a move with three or more touches.
	NoticeUnsupportedGesture
)

// String returns the kind name.
func (k NoticeKind) String() string {
	switch k {
	case NoticeNone:
		return "none"
	case NoticeNoTouches:
		return "no-touches"
	case NoticeUnsupportedGesture:
		return "unsupported-gesture"
	default:
		return fmt.Sprintf("NoticeKind(%d)", k)
	}
}

// Notice is a one-shot, non-fatal message for the user.
type Notice struct {
	Kind    NoticeKind
	Touches int // number of touches in the offending event
}

// Message returns the text shown to the user.
func (n Notice) Message() string {
	switch n.Kind {
	case NoticeNoTouches:
		return "no active touches"
	case NoticeUnsupportedGesture:
		return "gesture not supported"
	default:
		return ""
	}
}

// Notifier displays notices to the user. How (toast, alert, log line) is up
// to the implementation.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) { f(n) }

// LogNotifier returns a Notifier that writes each notice to l at Warn level.
// A nil logger uses the package Logger at the time of each notice.
func LogNotifier(l *slog.Logger) Notifier {
	return NotifierFunc(func(n Notice) {
		lg := l
		if lg == nil {
			lg = Logger()
		}
		lg.Warn(n.Message(), "kind", n.Kind.String(), "touches", n.Touches)
	})
}
