package model

import "time"

// ChatMessage is a single message within a conversation. Seq is the
// store-assigned ordering key and is authoritative for display order;
// CreatedAt is informational only (client clocks may skew).
type ChatMessage struct {
	ID              string    `json:"id"`
	ConversationKey string    `json:"conversation_key"`
	SenderID        string    `json:"sender_id"`
	Body            string    `json:"body"`
	Seq             int64     `json:"seq"`
	CreatedAt       time.Time `json:"created_at"`
}
