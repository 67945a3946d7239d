package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	pomodoro   *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	volume     *widget.Slider
	volumeText *widget.Label
	muted      *widget.Check
	autostart  *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Mood Todo Settings")

	pomodoro := widget.NewEntry()
	shortBreak := widget.NewEntry()
	longBreak := widget.NewEntry()

	volumeText := widget.NewLabel("")
	volume := widget.NewSlider(0, 100)
	volume.Step = 5
	volume.OnChanged = func(value float64) {
		volumeText.SetText(fmt.Sprintf("%d%%", int(value)))
	}

	muted := widget.NewCheck("Mute all sounds", nil)
	autostart := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("🍅 Pomodoro"), layout.NewSpacer(), pomodoro, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("☕ Short break"), layout.NewSpacer(), shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("🌴 Long break"), layout.NewSpacer(), longBreak, widget.NewLabel("min")),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), volumeText, volume),
		muted,
		widget.NewSeparator(),
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewPadded(form)))
	window.Resize(fyne.NewSize(380, 360))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		pomodoro:   pomodoro,
		shortBreak: shortBreak,
		longBreak:  longBreak,
		volume:     volume,
		volumeText: volumeText,
		muted:      muted,
		autostart:  autostart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

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
	prefs.pomodoro.SetText(formatMinutes(settings.Pomodoro))
	prefs.shortBreak.SetText(formatMinutes(settings.ShortBreak))
	prefs.longBreak.SetText(formatMinutes(settings.LongBreak))
	prefs.volume.SetValue(settings.Volume * 100)
	prefs.muted.SetChecked(settings.Muted)
	prefs.autostart.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	prefs.settings = Apply(prefs.settings, Form{
		Pomodoro:      prefs.pomodoro.Text,
		ShortBreak:    prefs.shortBreak.Text,
		LongBreak:     prefs.longBreak.Text,
		VolumePercent: prefs.volume.Value,
		Muted:         prefs.muted.Checked,
		LaunchAtLogin: prefs.autostart.Checked,
	})
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// Form holds the raw values entered in the window.
type Form struct {
	Pomodoro      string
	ShortBreak    string
	LongBreak     string
	VolumePercent float64
	Muted         bool
	LaunchAtLogin bool
}

// Apply merges form values into settings. Invalid durations keep the
// previous value.
func Apply(settings Settings, form Form) Settings {
	if minutes, ok := parsePositiveInt(form.Pomodoro); ok {
		settings.Pomodoro = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(form.ShortBreak); ok {
		settings.ShortBreak = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(form.LongBreak); ok {
		settings.LongBreak = time.Duration(minutes) * time.Minute
	}

	volume := form.VolumePercent / 100
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	settings.Volume = volume
	settings.Muted = form.Muted
	settings.LaunchAtLogin = form.LaunchAtLogin
	return settings
}

func formatMinutes(duration time.Duration) string {
	return strconv.Itoa(int(duration / time.Minute))
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
