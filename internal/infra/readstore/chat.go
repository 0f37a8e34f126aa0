package readstore

import (
	"context"

	"turfbook/internal/infra/db"
	"turfbook/internal/usecase/queries"
)

type ChatReadStore struct {
	db db.DBTX
}

func NewChatReadStore(db db.DBTX) *ChatReadStore {
	return &ChatReadStore{db: db}
}

const listRecentChatSQL = `
SELECT m.id, m.user_id, u.email, m.body, m.created_at
FROM chat_messages m
JOIN users u ON u.id = m.user_id
ORDER BY m.created_at DESC
LIMIT $1`

// FindRecent returns the newest messages oldest-first, ready for replay.
func (s *ChatReadStore) FindRecent(ctx context.Context, limit int) ([]*queries.ChatMessageView, error) {
	rows, err := s.db.Query(ctx, listRecentChatSQL, limit)
	if err != nil {
		return nil, classifyPgErr("failed to list chat messages", err)
	}
	defer rows.Close()

	var out []*queries.ChatMessageView
	for rows.Next() {
		var v queries.ChatMessageView
		if err := rows.Scan(&v.ID, &v.UserID, &v.UserEmail, &v.Body, &v.CreatedAt); err != nil {
			return nil, classifyPgErr("failed to scan chat message", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to read chat messages", err)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
