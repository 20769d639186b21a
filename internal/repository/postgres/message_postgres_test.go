package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"matchapi/internal/model"
)

var messageCols = []string{"id", "conversation_key", "sender_id", "body", "seq", "created_at"}

func TestMessagePostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMessagePostgres(db)
	ctx := context.Background()

	msg := &model.ChatMessage{
		ID:              "msg-1",
		ConversationKey: "u1:u2",
		SenderID:        "u1",
		Body:            "こんにちは",
	}

	rows := sqlmock.NewRows(messageCols).
		AddRow(msg.ID, msg.ConversationKey, msg.SenderID, msg.Body, int64(7), time.Now())

	mock.ExpectQuery("INSERT INTO chat_messages").
		WithArgs(msg.ID, msg.ConversationKey, msg.SenderID, msg.Body).
		WillReturnRows(rows)

	stored, err := repo.Append(ctx, msg)

	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, int64(7), stored.Seq)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagePostgres_ListByConversation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMessagePostgres(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(messageCols).
		AddRow("msg-1", "u1:u2", "u1", "first", int64(1), now).
		AddRow("msg-2", "u1:u2", "u2", "second", int64(2), now)

	mock.ExpectQuery("SELECT (.+) FROM chat_messages WHERE conversation_key = ?").
		WithArgs("u1:u2").
		WillReturnRows(rows)

	items, err := repo.ListByConversation(ctx, "u1:u2")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Seq)
	assert.Equal(t, int64(2), items[1].Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}
