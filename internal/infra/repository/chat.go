package repository

import (
	"context"
	"time"

	"turfbook/internal/infra/db"

	"github.com/google/uuid"
)

type ChatMessageRepository struct{}

func NewChatMessageRepository() *ChatMessageRepository {
	return &ChatMessageRepository{}
}

const createChatMessageSQL = `
INSERT INTO chat_messages (user_id, body, created_at)
VALUES ($1, $2, $3)
RETURNING id`

func (r *ChatMessageRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, body string, now time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	if err := tx.QueryRow(ctx, createChatMessageSQL, userID, body, now).Scan(&id); err != nil {
		return uuid.Nil, classifyPgErr("failed to create chat message", err)
	}
	return id, nil
}
