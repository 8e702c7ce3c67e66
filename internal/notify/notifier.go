package notify

import (
	"fmt"
	"log"

	"pomobar/internal/core/session"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Notification is a user-facing alert for a completed phase.
type Notification struct {
	ID    string
	Phase session.Phase
	Title string
	Body  string
}

// Sender delivers notifications to the user.
type Sender interface {
	Send(notification Notification) error
}

// Notifier turns PhaseCompleted events into notifications.
type Notifier struct {
	sender  Sender
	enabled bool
	newID   func() string
}

// New creates a notifier delivering through sender.
func New(sender Sender) *Notifier {
	return &Notifier{
		sender:  sender,
		enabled: true,
		newID:   uuid.NewString,
	}
}

// SetEnabled toggles delivery without detaching from the engine.
func (notifier *Notifier) SetEnabled(enabled bool) {
	notifier.enabled = enabled
}

// Attach subscribes the notifier to engine events and returns the unsubscribe function.
func (notifier *Notifier) Attach(engine *session.Engine) func() {
	return engine.Subscribe(notifier.Handle)
}

// Handle processes a single engine event.
func (notifier *Notifier) Handle(event session.Event) {
	if event.Type != session.EventPhaseCompleted || !notifier.enabled || notifier.sender == nil {
		return
	}
	title, body := session.MessageFor(event.Phase)
	notification := Notification{
		ID:    notifier.newID(),
		Phase: event.Phase,
		Title: title,
		Body:  body,
	}
	if err := notifier.sender.Send(notification); err != nil {
		log.Printf("notify %s: %v", notification.ID, err)
	}
}

// FyneSender delivers notifications through the desktop notification API.
type FyneSender struct {
	app fyne.App
}

// NewFyneSender creates a sender bound to a Fyne application.
func NewFyneSender(app fyne.App) *FyneSender {
	return &FyneSender{app: app}
}

// Send implements Sender.
func (sender *FyneSender) Send(notification Notification) error {
	if sender.app == nil {
		return fmt.Errorf("send notification: no application")
	}
	sender.app.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	return nil
}
