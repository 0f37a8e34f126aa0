package commands

import (
	"context"

	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmptyChatMessage = errs.New("chat message body is empty")

const maxChatMessageLen = 2000

type ChatCommands interface {
	PostMessage(ctx context.Context, userID uuid.UUID, body string) (uuid.UUID, error)
}

type chatCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewChatCommands(uow shared.UnitOfWork, clk clock.Clock) ChatCommands {
	return &chatCommandsImpl{uow: uow, clock: clk}
}

func (c *chatCommandsImpl) PostMessage(ctx context.Context, userID uuid.UUID, body string) (uuid.UUID, error) {
	if body == "" {
		return uuid.Nil, ErrEmptyChatMessage
	}
	if len(body) > maxChatMessageLen {
		body = body[:maxChatMessageLen]
	}

	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		msgID, txErr := tx.Chat().Create(ctx, tx.DB(), userID, body, c.clock.Now())
		if txErr != nil {
			return txErr
		}
		id = msgID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
