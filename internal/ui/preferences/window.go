package preferences

import (
	"strings"

	"devruntime/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	target      *widget.Entry
	staticLabel *widget.Entry
	staticTime  *widget.Check
	flowTime    *widget.Check
	alertSound  *widget.Check
	polygon     *widget.RadioGroup
	background  *widget.Entry
	foreground  *widget.Entry
	apiURL      *widget.Entry
	errorLabel  *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("DevRuntime Settings")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		target:      widget.NewEntry(),
		staticLabel: widget.NewEntry(),
		staticTime:  widget.NewCheck("Static countdown view", nil),
		flowTime:    widget.NewCheck("Live elapsed view", nil),
		alertSound:  widget.NewCheck("Play a sound when the target is reached", nil),
		polygon:     widget.NewRadioGroup([]string{string(model.PolygonSquare), string(model.PolygonCircle)}, nil),
		background:  widget.NewEntry(),
		foreground:  widget.NewEntry(),
		apiURL:      widget.NewEntry(),
		errorLabel:  widget.NewLabel(""),
	}
	prefs.target.SetPlaceHolder("HH:MM:SS")
	prefs.background.SetPlaceHolder("#F0F5F8")
	prefs.foreground.SetPlaceHolder("#1F2937")
	prefs.polygon.Horizontal = true
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Target", prefs.target),
			widget.NewFormItem("Static label", prefs.staticLabel),
		),
		prefs.staticTime,
		prefs.flowTime,
		prefs.alertSound,
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Shape", prefs.polygon),
			widget.NewFormItem("Background", prefs.background),
			widget.NewFormItem("Text color", prefs.foreground),
		),
		widget.NewLabelWithStyle("Posts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(widget.NewFormItem("API URL", prefs.apiURL)),
		prefs.errorLabel,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 520))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.target.SetText(settings.Target)
	prefs.staticLabel.SetText(settings.StaticLabel)
	prefs.staticTime.SetChecked(settings.StaticTime)
	prefs.flowTime.SetChecked(settings.FlowTime)
	prefs.alertSound.SetChecked(settings.AlertSound)
	prefs.polygon.SetSelected(string(settings.PolygonForm))
	prefs.background.SetText(settings.BackgroundColor)
	prefs.foreground.SetText(settings.Color)
	prefs.apiURL.SetText(settings.APIURL)
	prefs.errorLabel.SetText("")
}

func (prefs *Window) handleSave() {
	settings := prefs.collect()
	if err := settings.Validate(); err != nil {
		prefs.errorLabel.SetText("Target must look like HH:MM:SS")
		return
	}

	prefs.settings = settings
	prefs.errorLabel.SetText("")
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() Settings {
	settings := prefs.settings
	settings.Target = strings.TrimSpace(prefs.target.Text)
	settings.StaticLabel = strings.TrimSpace(prefs.staticLabel.Text)
	settings.StaticTime = prefs.staticTime.Checked
	settings.FlowTime = prefs.flowTime.Checked
	settings.AlertSound = prefs.alertSound.Checked
	settings.PolygonForm = model.PolygonForm(prefs.polygon.Selected)
	if settings.PolygonForm != model.PolygonCircle {
		settings.PolygonForm = model.PolygonSquare
	}
	settings.BackgroundColor = strings.TrimSpace(prefs.background.Text)
	settings.Color = strings.TrimSpace(prefs.foreground.Text)
	if apiURL := strings.TrimRight(strings.TrimSpace(prefs.apiURL.Text), "/"); apiURL != "" {
		settings.APIURL = apiURL
	}
	return settings
}
