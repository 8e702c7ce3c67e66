package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings) error
	focus      *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	cycles     *widget.Entry
	errorLabel *widget.Label
}

// New creates a preferences window.
// onSave may reject the settings, in which case the error is shown and the window stays open.
func New(app fyne.App, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow("Timer Settings")

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		focus:      widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		cycles:     widget.NewEntry(),
		errorLabel: widget.NewLabel(""),
	}
	prefs.errorLabel.Wrapping = fyne.TextWrapWord
	prefs.errorLabel.Hide()

	form := widget.NewForm(
		widget.NewFormItem("Pomodoro length (minutes)", prefs.focus),
		widget.NewFormItem("Break length (minutes)", prefs.shortBreak),
		widget.NewFormItem("Long break length (minutes)", prefs.longBreak),
		widget.NewFormItem("Pomodoros before long break", prefs.cycles),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(layout.NewSpacer(), saveButton, cancelButton, layout.NewSpacer())

	header := widget.NewLabelWithStyle("Timer Settings", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	content := container.NewBorder(header, container.NewVBox(prefs.errorLabel, buttons), nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 280))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs.UpdateSettings(settings)
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
	prefs.focus.SetText(strconv.Itoa(settings.FocusMinutes))
	prefs.shortBreak.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longBreak.SetText(strconv.Itoa(settings.LongBreakMinutes))
	prefs.cycles.SetText(strconv.Itoa(settings.CyclesBeforeLongBreak))
	prefs.errorLabel.Hide()
}

func (prefs *Window) handleSave() {
	settings, err := prefs.collect()
	if err == nil {
		err = settings.CheckRanges()
	}
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(settings)
	}
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}

	prefs.settings = settings
	prefs.errorLabel.Hide()
	prefs.window.Hide()
}

func (prefs *Window) collect() (Settings, error) {
	settings := prefs.settings
	fields := []struct {
		name   string
		entry  *widget.Entry
		target *int
	}{
		{"pomodoro length", prefs.focus, &settings.FocusMinutes},
		{"break length", prefs.shortBreak, &settings.ShortBreakMinutes},
		{"long break length", prefs.longBreak, &settings.LongBreakMinutes},
		{"pomodoros before long break", prefs.cycles, &settings.CyclesBeforeLongBreak},
	}
	for _, field := range fields {
		value, ok := parsePositiveInt(field.entry.Text)
		if !ok {
			return settings, fmt.Errorf("%s must be a whole number of at least 1", field.name)
		}
		*field.target = value
	}
	return settings, nil
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
