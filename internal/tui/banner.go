package tui

import (
	"sync"

	"pomobar/internal/notify"
)

// Banner is a notify.Sender that keeps the latest notification for display.
type Banner struct {
	mu      sync.Mutex
	current notify.Notification
}

// Send implements notify.Sender.
func (banner *Banner) Send(notification notify.Notification) error {
	banner.mu.Lock()
	defer banner.mu.Unlock()
	banner.current = notification
	return nil
}

// Text returns the rendered notification or an empty string.
func (banner *Banner) Text() string {
	banner.mu.Lock()
	defer banner.mu.Unlock()
	if banner.current.Title == "" {
		return ""
	}
	return banner.current.Title + " " + banner.current.Body
}

// Clear drops the current notification.
func (banner *Banner) Clear() {
	banner.mu.Lock()
	defer banner.mu.Unlock()
	banner.current = notify.Notification{}
}
