package timerview

import (
	"context"
	"image/color"
	"strconv"
	"strings"

	"devruntime/internal/core/achievement"
	"devruntime/internal/core/model"
	"devruntime/internal/present"
	"devruntime/internal/ui/animation"
	"devruntime/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	defaultBackground = color.NRGBA{R: 0xF0, G: 0xF5, B: 0xF8, A: 0xFF}
	defaultForeground = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	mutedForeground   = color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
)

const (
	faceSize      = float32(400)
	squareRadius  = float32(10)
	targetSize    = float32(36)
	elapsedSize   = float32(48)
	separatorSize = float32(20)
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnTogglePause func()
	OnReset       func()
}

// Window shows one timer session.
type Window struct {
	window      fyne.Window
	session     *achievement.Session
	config      model.TimerConfig
	callbacks   Callbacks
	staticText  *canvas.Text
	targetText  *canvas.Text
	separator   *canvas.Text
	elapsedText *canvas.Text
	pauseButton *widget.Button
	trophy      dialog.Dialog
	trophyOpen  bool
}

// New creates the timer window for a session.
func New(app fyne.App, session *achievement.Session, callbacks Callbacks) *Window {
	config := session.Config()
	window := app.NewWindow("DevRuntime")

	foreground := parseColor(config.Style.Color, defaultForeground)
	staticText := newText(targetSize, mutedForeground, false)
	targetText := newText(targetSize, mutedForeground, false)
	separator := newText(separatorSize, foreground, true)
	separator.Text = present.FlowSeparator
	elapsedText := newText(elapsedSize, foreground, true)

	timer := &Window{
		window:      window,
		session:     session,
		config:      config,
		callbacks:   callbacks,
		staticText:  staticText,
		targetText:  targetText,
		separator:   separator,
		elapsedText: elapsedText,
	}

	timer.pauseButton = widget.NewButton("Pause", func() {
		if timer.callbacks.OnTogglePause != nil {
			timer.callbacks.OnTogglePause()
		}
	})
	resetButton := widget.NewButton("Reset", func() {
		if timer.callbacks.OnReset != nil {
			timer.callbacks.OnReset()
		}
	})

	lines := container.NewVBox()
	if config.IsStaticTime {
		lines.Add(container.NewCenter(staticText))
	}
	if config.IsFlowTime {
		lines.Add(container.NewCenter(targetText))
		lines.Add(container.NewCenter(separator))
		lines.Add(container.NewCenter(elapsedText))
	}

	face := container.NewStack(newFace(config), container.NewCenter(lines))
	buttons := container.NewHBox(layout.NewSpacer(), timer.pauseButton, resetButton, layout.NewSpacer())
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, face))
	window.Resize(fyne.NewSize(faceSize, faceSize+60))

	timer.render(session.Store().Snapshot())
	return timer
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
}

// Window exposes the underlying Fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// SetPaused updates the pause button label.
func (timer *Window) SetPaused(paused bool) {
	fyne.Do(func() {
		timer.setPausedUnsafe(paused)
	})
}

// HandleEvent re-renders from the session state after any session event.
func (timer *Window) HandleEvent(event achievement.Event) {
	fyne.Do(func() {
		timer.update(timer.session.Store().Snapshot())
	})
}

func (timer *Window) update(snapshot achievement.Snapshot) {
	timer.render(snapshot)
	timer.syncTrophy(snapshot)
}

func (timer *Window) render(snapshot achievement.Snapshot) {
	view := present.Render(timer.config, snapshot.Elapsed)
	timer.staticText.Text = view.StaticText()
	timer.targetText.Text = view.TargetText()
	timer.elapsedText.Text = view.ElapsedText()
	timer.staticText.Refresh()
	timer.targetText.Refresh()
	timer.elapsedText.Refresh()
}

// syncTrophy opens the trophy dialog for an unacknowledged achievement and
// closes it once the achievement is lost or acknowledged elsewhere.
func (timer *Window) syncTrophy(snapshot achievement.Snapshot) {
	pending := snapshot.Achieved && !snapshot.TrophySeen
	if pending && !timer.trophyOpen {
		timer.showTrophy()
		return
	}
	if !pending && timer.trophyOpen {
		timer.trophyOpen = false
		timer.trophy.Hide()
	}
}

func (timer *Window) showTrophy() {
	icon := widget.NewIcon(resources.TrophyIcon())
	celebration := animation.New(func(frame fyne.Resource) {
		fyne.Do(func() {
			icon.SetResource(frame)
		})
	})
	message := widget.NewLabel("Target " + present.Target(timer.config.Target) + " reached!")
	content := container.NewVBox(container.NewCenter(icon), message)

	trophy := dialog.NewCustom("Trophy", "Got it", content, timer.window)
	trophy.SetOnClosed(func() {
		celebration.Stop()
		if timer.trophy != trophy {
			return
		}
		wasOpen := timer.trophyOpen
		timer.trophyOpen = false
		if wasOpen {
			timer.session.Acknowledge()
		}
	})
	timer.trophy = trophy
	timer.trophyOpen = true
	trophy.Show()
	celebration.StartLoop(context.Background(), animation.TrophyFrames(resources.TrophyIcon(), resources.SparkleIcon()))
}

func (timer *Window) setPausedUnsafe(paused bool) {
	if paused {
		timer.pauseButton.SetText("Resume")
		return
	}
	timer.pauseButton.SetText("Pause")
}

func newText(size float32, fill color.Color, bold bool) *canvas.Text {
	text := canvas.NewText("", fill)
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = size
	text.TextStyle = fyne.TextStyle{Bold: bold, Monospace: true}
	return text
}

func newFace(config model.TimerConfig) fyne.CanvasObject {
	fill := parseColor(config.Style.BackgroundColor, defaultBackground)
	if config.PolygonForm == model.PolygonCircle {
		return canvas.NewCircle(fill)
	}
	face := canvas.NewRectangle(fill)
	face.CornerRadius = squareRadius
	return face
}

// parseColor accepts #RGB and #RRGGBB; anything else yields fallback.
func parseColor(value string, fallback color.NRGBA) color.NRGBA {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}
	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 0xFF,
	}
}
