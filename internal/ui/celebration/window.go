// Package celebration shows the confetti overlay after a task or a timer
// completes.
package celebration

import (
	"context"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"moodtodo/internal/app"
	"moodtodo/internal/ui/animation"
)

const (
	overlayWidth   = float32(420)
	overlayHeight  = float32(320)
	overlayOpacity = uint8(230)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window manages the celebration overlay.
type Window struct {
	mu         sync.Mutex
	window     fyne.Window
	background *canvas.Rectangle
	title      *canvas.Text
	message    *canvas.Text
	layer      *fyne.Container
	pieces     []fyne.CanvasObject
	engine     *animation.Engine
	onClose    func()
	visible    bool
}

// New creates the overlay window. onClose runs whenever the overlay goes
// away, by click or by timeout.
func New(fyneApp fyne.App, config animation.Config, onClose func()) *Window {
	window := fyneApp.NewWindow("Celebration")
	if driver, ok := fyneApp.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	}
	if fyneApp.Icon() != nil {
		window.SetIcon(fyneApp.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 0x2b, G: 0x1b, B: 0x3d, A: overlayOpacity})

	title := canvas.NewText("🎉 Yay! 🎉", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 32

	message := canvas.NewText("", color.NRGBA{R: 255, G: 214, B: 107, A: 255})
	message.Alignment = fyne.TextAlignCenter
	message.TextSize = 18

	hint := canvas.NewText("click anywhere to close", color.NRGBA{R: 255, G: 255, B: 255, A: 160})
	hint.Alignment = fyne.TextAlignCenter
	hint.TextSize = 12

	overlay := &Window{
		window:     window,
		background: background,
		title:      title,
		message:    message,
		layer:      container.NewWithoutLayout(),
		onClose:    onClose,
	}
	overlay.engine = animation.New(config, overlay.drawFrame)

	for i := 0; i < config.Count; i++ {
		overlay.pieces = append(overlay.pieces, canvas.NewCircle(color.Transparent))
	}
	overlay.layer.Objects = overlay.pieces

	text := container.NewVBox(title, message, hint)
	root := container.NewStack(
		background,
		overlay.layer,
		container.NewCenter(text),
		newTapLayer(overlay.Close),
	)
	window.SetContent(root)
	window.Resize(fyne.NewSize(overlayWidth, overlayHeight))
	window.SetCloseIntercept(overlay.Close)

	return overlay
}

// Show opens the overlay for reason and starts the confetti. It is safe to
// call from any goroutine.
func (overlay *Window) Show(reason app.CelebrationReason) {
	fyne.Do(func() {
		overlay.mu.Lock()
		overlay.visible = true
		overlay.mu.Unlock()

		overlay.message.Text = MessageFor(reason)
		overlay.message.Refresh()

		particles := overlay.engine.Start(context.Background(), func() {
			fyne.Do(overlay.Close)
		})
		overlay.paintParticles(particles)

		overlay.window.Resize(fyne.NewSize(overlayWidth, overlayHeight))
		overlay.window.CenterOnScreen()
		overlay.window.Show()
		overlay.applyNativeOpacity(overlayOpacity)
		overlay.window.RequestFocus()
	})
}

// Close hides the overlay. Repeated calls have no further effect.
func (overlay *Window) Close() {
	overlay.mu.Lock()
	if !overlay.visible {
		overlay.mu.Unlock()
		return
	}
	overlay.visible = false
	overlay.mu.Unlock()

	overlay.engine.Stop()
	overlay.window.Hide()
	if overlay.onClose != nil {
		overlay.onClose()
	}
}

// Visible reports whether the overlay is shown.
func (overlay *Window) Visible() bool {
	overlay.mu.Lock()
	defer overlay.mu.Unlock()
	return overlay.visible
}

// MessageFor returns the overlay text for reason.
func MessageFor(reason app.CelebrationReason) string {
	switch reason {
	case app.ReasonTimerCompleted:
		return "Time's up! Great work, take a breath 🌸"
	default:
		return "Task completed! You're doing amazing 💖"
	}
}

func (overlay *Window) paintParticles(particles []animation.Particle) {
	for i, piece := range overlay.pieces {
		circle := piece.(*canvas.Circle)
		if i >= len(particles) {
			circle.Hide()
			continue
		}
		circle.FillColor = particles[i].Color
		circle.Resize(fyne.NewSize(particles[i].Size, particles[i].Size))
		circle.Hide()
	}
}

func (overlay *Window) drawFrame(frame animation.Frame) {
	fyne.Do(func() {
		size := overlay.layer.Size()
		for i, particle := range frame.Particles {
			if i >= len(overlay.pieces) {
				break
			}
			piece := overlay.pieces[i]
			x, y, visible := particle.At(frame.Elapsed)
			if !visible {
				piece.Hide()
				continue
			}
			piece.Move(fyne.NewPos(x*size.Width, y*size.Height))
			piece.Show()
		}
		overlay.layer.Refresh()
	})
}

type tapLayer struct {
	widget.BaseWidget
	onTap func()
}

func newTapLayer(onTap func()) *tapLayer {
	layer := &tapLayer{onTap: onTap}
	layer.ExtendBaseWidget(layer)
	return layer
}

func (layer *tapLayer) Tapped(*fyne.PointEvent) {
	if layer.onTap != nil {
		layer.onTap()
	}
}

func (layer *tapLayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
