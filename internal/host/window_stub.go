//go:build (linux || freebsd || netbsd || openbsd || dragonfly) && !android && !cgo

package host

import (
	"errors"

	"github.com/gogpu/gridview"
)

// RunWindow reports that window mode is unavailable: on Unix desktops ebiten
// reaches X11 and OpenGL through cgo.
func RunWindow(_ *gridview.View, _ *Toast, _ WindowConfig) error {
	return errors.New("host: window mode requires cgo (build with CGO_ENABLED=1)")
}
