// Package tui provides the Bubble Tea form that hosts a tip calculator session.
package tui

import "github.com/h0rv/tipcalc/internal/domain"

// NotificationMsg asks the form to show a notification as a toast.
type NotificationMsg struct {
	Notification domain.Notification
}

// ErrorMsg is emitted when a command fails.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}

// toastExpiredMsg clears the toast with the given id if it is still showing.
type toastExpiredMsg struct {
	id int
}
