package repository

import "context"

// Notifier defines the interface for delivering rendered messages to a
// chat. Rendering happens before this boundary.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
