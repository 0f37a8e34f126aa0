//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"turfbook/internal/pkg/clock"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/shared"
	sharedmock "turfbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	uow  *sharedmock.MockUnitOfWork
	tx   *sharedmock.MockTx
	chat *sharedmock.MockChatMessageRepository
	uc   commands.ChatCommands
}

func (s *ChatCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.chat = sharedmock.NewMockChatMessageRepository(s.ctrl)

	s.tx.EXPECT().Chat().Return(s.chat).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.uc = commands.NewChatCommands(s.uow, clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
}

func (s *ChatCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestChatCommandsSuite(t *testing.T) {
	suite.Run(t, new(ChatCommandsTestSuite))
}

func (s *ChatCommandsTestSuite) TestPostMessage() {
	userID := uuid.New()

	s.Run("success: message persisted", func() {
		msgID := uuid.New()
		s.chat.EXPECT().Create(gomock.Any(), gomock.Any(), userID, "anyone up for five-a-side?", gomock.Any()).
			Return(msgID, nil)

		got, err := s.uc.PostMessage(context.Background(), userID, "anyone up for five-a-side?")
		s.NoError(err)
		s.Equal(msgID, got)
	})

	s.Run("error: empty body", func() {
		_, err := s.uc.PostMessage(context.Background(), userID, "")
		s.ErrorIs(err, commands.ErrEmptyChatMessage)
	})

	s.Run("success: oversized body is truncated", func() {
		long := strings.Repeat("x", 2500)
		s.chat.EXPECT().Create(gomock.Any(), gomock.Any(), userID, strings.Repeat("x", 2000), gomock.Any()).
			Return(uuid.New(), nil)

		_, err := s.uc.PostMessage(context.Background(), userID, long)
		s.NoError(err)
	})
}
