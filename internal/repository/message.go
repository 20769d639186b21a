package repository

import (
	"context"

	"matchapi/internal/model"
)

// MessageRepository defines data access for chat messages. Messages are
// append-only; the store assigns the seq ordering key on insert.
type MessageRepository interface {
	// Append inserts a message and returns it with the store-assigned
	// seq and created_at populated.
	Append(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error)

	// ListByConversation returns every message of a conversation ordered
	// by seq ascending.
	ListByConversation(ctx context.Context, conversationKey string) ([]model.ChatMessage, error)
}
