package postgres

import (
	"context"
	"database/sql"

	"matchapi/internal/model"
	"matchapi/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
type MessagePostgres struct {
	db *sql.DB
}

func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

// Append inserts a message row. seq and created_at are assigned by the
// database and returned on the stored record.
func (r *MessagePostgres) Append(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error) {
	const q = `
		INSERT INTO chat_messages (id, conversation_key, sender_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, conversation_key, sender_id, body, seq, created_at
	`
	row := r.db.QueryRowContext(ctx, q, msg.ID, msg.ConversationKey, msg.SenderID, msg.Body)
	var out model.ChatMessage
	if err := row.Scan(
		&out.ID,
		&out.ConversationKey,
		&out.SenderID,
		&out.Body,
		&out.Seq,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByConversation returns a conversation's messages ordered by the
// store-assigned seq, ascending.
func (r *MessagePostgres) ListByConversation(ctx context.Context, conversationKey string) ([]model.ChatMessage, error) {
	const q = `
		SELECT id, conversation_key, sender_id, body, seq, created_at
		FROM chat_messages
		WHERE conversation_key = $1
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, q, conversationKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.ConversationKey,
			&m.SenderID,
			&m.Body,
			&m.Seq,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
