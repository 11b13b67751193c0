package host

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gridview"
)

// ToastDuration is how long a notice stays on screen.
const ToastDuration = 3 * time.Second

var printer = message.NewPrinter(language.English)

// StatusLine formats the one-line HUD shown under the canvas.
func StatusLine(v *gridview.View) string {
	vp := v.Viewport()
	w, h := v.Size()
	cols, rows := 0, 0
	if g := v.Grid(); g != nil {
		cols, rows = g.Columns(), g.Rows()
	}
	return printer.Sprintf("grid %d×%d  canvas %d×%d  scale %.3f  offset (%.1f, %.1f)",
		cols, rows, w, h, vp.Scale(), vp.Offset().X, vp.Offset().Y)
}

// Toast is a Notifier that keeps the latest notice visible for
// ToastDuration.
type Toast struct {
	now   func() time.Time
	text  string
	until time.Time
}

// NewToast creates a toast driven by the given clock. A nil clock uses
// time.Now.
func NewToast(now func() time.Time) *Toast {
	if now == nil {
		now = time.Now
	}
	return &Toast{now: now}
}

// Notify shows n, replacing any notice still on screen.
func (t *Toast) Notify(n gridview.Notice) {
	t.text = n.Message()
	t.until = t.now().Add(ToastDuration)
}

// Text returns the notice to draw, or "" once it has expired.
func (t *Toast) Text() string {
	if t.text == "" || !t.now().Before(t.until) {
		return ""
	}
	return t.text
}

// Notifiers fans a notice out to every n in order.
func Notifiers(ns ...gridview.Notifier) gridview.Notifier {
	return gridview.NotifierFunc(func(n gridview.Notice) {
		for _, x := range ns {
			x.Notify(n)
		}
	})
}
