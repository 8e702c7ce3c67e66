package popover

import (
	"fmt"
	"image/color"

	"pomobar/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines popover button handlers.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnSettings func()
}

// Window shows the countdown, controls and session statistics.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	phaseLabel   *canvas.Text
	timerLabel   *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button
	settings     *widget.Button
	focusCount   *widget.Label
	breakCount   *widget.Label
	longCount    *widget.Label
}

const (
	windowWidth  = float32(300)
	windowHeight = float32(280)
)

// New creates the popover window. It starts hidden.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("pomobar")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	phaseLabel := canvas.NewText(session.Title(session.PhaseFocus), theme.Color(theme.ColorNameForeground))
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 18

	timerLabel := canvas.NewText("25:00", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timerLabel.TextSize = 36

	popover := &Window{
		window:     window,
		callbacks:  callbacks,
		phaseLabel: phaseLabel,
		timerLabel: timerLabel,
		focusCount: widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true}),
		breakCount: widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true}),
		longCount:  widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true}),
	}

	popover.toggleButton = widget.NewButton("Start", func() {
		if popover.callbacks.OnToggle != nil {
			popover.callbacks.OnToggle()
		}
	})
	popover.resetButton = widget.NewButton("Reset", func() {
		if popover.callbacks.OnReset != nil {
			popover.callbacks.OnReset()
		}
	})
	popover.settings = widget.NewButton("Settings", func() {
		if popover.callbacks.OnSettings != nil {
			popover.callbacks.OnSettings()
		}
	})

	stats := container.NewGridWithColumns(3,
		statsBox("Pomodoros", popover.focusCount),
		statsBox("Breaks", popover.breakCount),
		statsBox("Long Breaks", popover.longCount),
	)

	content := container.NewVBox(
		phaseLabel,
		timerLabel,
		container.NewHBox(layout.NewSpacer(), popover.toggleButton, popover.resetButton, layout.NewSpacer()),
		container.NewCenter(popover.settings),
		widget.NewLabelWithStyle("Statistics", fyne.TextAlignCenter, fyne.TextStyle{}),
		stats,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return popover
}

// Show displays the popover.
func (popover *Window) Show() {
	popover.window.Show()
	popover.window.RequestFocus()
}

// Hide closes the popover without destroying it.
func (popover *Window) Hide() {
	popover.window.Hide()
}

// Render updates every label from an engine snapshot.
func (popover *Window) Render(state session.State) {
	popover.phaseLabel.Text = session.Title(state.Phase)
	popover.phaseLabel.Color = phaseColor(state.Phase)
	popover.phaseLabel.Refresh()

	popover.timerLabel.Text = session.FormatClock(state.SecondsRemaining)
	popover.timerLabel.Refresh()

	if state.Running {
		popover.toggleButton.SetText("Pause")
	} else {
		popover.toggleButton.SetText("Start")
	}

	popover.focusCount.SetText(fmt.Sprintf("%d", state.FocusCompleted))
	popover.breakCount.SetText(fmt.Sprintf("%d", state.ShortBreakCompleted))
	popover.longCount.SetText(fmt.Sprintf("%d", state.LongBreakCompleted))
}

func statsBox(title string, value *widget.Label) fyne.CanvasObject {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = 6
	background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	background.StrokeWidth = 1

	caption := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	return container.NewStack(background, container.NewVBox(caption, value))
}

func phaseColor(phase session.Phase) color.Color {
	switch phase {
	case session.PhaseShortBreak:
		return theme.Color(theme.ColorNameSuccess)
	case session.PhaseLongBreak:
		return theme.Color(theme.ColorNamePrimary)
	default:
		return theme.Color(theme.ColorNameForeground)
	}
}
