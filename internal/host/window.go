//go:build !((linux || freebsd || netbsd || openbsd || dragonfly) && !android && !cgo)

package host

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gridview"
)

// mouseTouchID is the touch ID used for the left mouse button.
const mouseTouchID = -1

// RunWindow opens a desktop window showing v and forwards touch, mouse and
// keyboard input to it. It blocks until the window closes.
func RunWindow(v *gridview.View, toast *Toast, cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	if toast == nil {
		toast = NewToast(nil)
	}
	w, h := v.Size()

	g := &game{view: v, toast: toast, cfg: cfg, dirty: true, height: h}
	unsubscribe := v.Subscribe(gridview.SinkFunc(func([]byte, int, int) error {
		g.dirty = true
		return nil
	}))
	defer unsubscribe()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h+hudHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

const hudHeight = 20

type game struct {
	view    *gridview.View
	toast   *Toast
	cfg     WindowConfig
	tracker Tracker
	height  int

	img      *ebiten.Image
	dirty    bool
	touchIDs []ebiten.TouchID
	samples  []gridview.TouchSample
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range g.tracker.Update(g.pollTouches()) {
		if _, err := g.view.HandleTouch(ev); err != nil {
			return err
		}
	}

	if err := g.handleWheel(); err != nil {
		return err
	}
	return g.handleKeys()
}

// pollTouches returns the touches currently down. The left mouse button
// acts as a single touch while no real touch is down.
func (g *game) pollTouches() []gridview.TouchSample {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.samples = g.samples[:0]
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.samples = append(g.samples, gridview.TouchSample{ID: int(id), Pos: touchPos(x, y)})
	}
	if len(g.samples) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.samples = append(g.samples, gridview.TouchSample{ID: mouseTouchID, Pos: touchPos(x, y)})
	}
	return g.samples
}

// touchPos converts an ebiten pixel position, which is canvas-local since
// the canvas is drawn at the window origin, to touch space.
func touchPos(x, y int) gridview.Point {
	return gridview.TouchPos(gridview.Pt(float64(x), float64(y)))
}

func (g *game) handleWheel() error {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return nil
	}
	x, y := ebiten.CursorPosition()
	factor := math.Pow(g.cfg.WheelFactor, dy)
	err := g.view.ZoomAt(gridview.Pt(float64(x), float64(y)), factor)
	if errors.Is(err, gridview.ErrInvalidZoomFactor) {
		return nil
	}
	return err
}

func (g *game) handleKeys() error {
	step, ds := g.cfg.PanStep, g.cfg.ScaleStep
	pans := []struct {
		key   ebiten.Key
		delta gridview.Point
	}{
		{ebiten.KeyArrowLeft, gridview.Pt(step, 0)},
		{ebiten.KeyArrowRight, gridview.Pt(-step, 0)},
		{ebiten.KeyArrowUp, gridview.Pt(0, step)},
		{ebiten.KeyArrowDown, gridview.Pt(0, -step)},
	}
	for _, p := range pans {
		if inpututil.IsKeyJustPressed(p.key) {
			if err := g.view.Pan(p.delta); err != nil {
				return err
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		return g.view.AdjustScale(ds)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		return g.view.AdjustScale(-ds)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.view.SetViewport(g.cfg.Home)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.view.Frame()
	w, h := frame.Width(), frame.Height()
	if w == 0 || h == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.dirty = true
	}
	if g.dirty {
		g.img.WritePixels(frame.Data())
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)

	ebitenutil.DebugPrintAt(screen, StatusLine(g.view), 4, h+2)
	if msg := g.toast.Text(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}

// Layout keeps the canvas as wide as the window; the height stays fixed.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.view.Resize(outsideWidth, g.height); err != nil {
		gridview.Logger().Warn("resize canvas", "width", outsideWidth, "err", err)
	}
	return outsideWidth, outsideHeight
}
