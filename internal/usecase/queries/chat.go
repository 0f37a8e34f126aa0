package queries

import "context"

type ChatQueries interface {
	Recent(ctx context.Context, limit int) ([]*ChatMessageView, error)
}

type ChatViewRepo interface {
	FindRecent(ctx context.Context, limit int) ([]*ChatMessageView, error)
}

type chatQueriesImpl struct {
	repo ChatViewRepo
}

func NewChatQueries(repo ChatViewRepo) ChatQueries {
	return &chatQueriesImpl{repo: repo}
}

func (q *chatQueriesImpl) Recent(ctx context.Context, limit int) ([]*ChatMessageView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.repo.FindRecent(ctx, limit)
}
