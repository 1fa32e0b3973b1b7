package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
)

type chatFixture struct {
	chatRepo         *MockChatRepository
	userRepo         *MockUserRepository
	itemRepo         *MockItemRepository
	notificationRepo *MockNotificationRepository
	usecase          *ChatUsecase
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		chatRepo:         new(MockChatRepository),
		userRepo:         new(MockUserRepository),
		itemRepo:         new(MockItemRepository),
		notificationRepo: new(MockNotificationRepository),
	}
	f.usecase = NewChatUsecase(f.chatRepo, f.userRepo, f.itemRepo, f.notificationRepo)
	return f
}

func TestChatStart_CreatesConversation(t *testing.T) {
	f := newChatFixture()
	ctx := context.Background()
	senderID, receiverID, itemID := uuid.New(), uuid.New(), uuid.New()

	f.userRepo.On("GetByID", ctx, receiverID).Return(&entities.User{ID: receiverID}, nil)
	f.itemRepo.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID}, nil)
	f.chatRepo.On("FindChat", ctx, senderID, receiverID, mock.Anything).Return(nil, domainerrors.ErrNotFound)
	f.chatRepo.On("CreateChat", ctx, mock.MatchedBy(func(c *entities.Chat) bool {
		return c.SenderID == senderID && c.ReceiverID == receiverID && c.ItemID != nil && *c.ItemID == itemID
	})).Return(nil)

	chat, err := f.usecase.Start(ctx, senderID, &entities.CreateChatInput{
		ReceiverID: receiverID.String(),
		ItemID:     itemID.String(),
	})
	require.NoError(t, err)
	require.Equal(t, receiverID, chat.ReceiverID)
	f.chatRepo.AssertExpectations(t)
}

func TestChatStart_ReusesExisting(t *testing.T) {
	f := newChatFixture()
	ctx := context.Background()
	senderID, receiverID := uuid.New(), uuid.New()
	existing := &entities.Chat{ID: uuid.New(), SenderID: receiverID, ReceiverID: senderID}

	f.userRepo.On("GetByID", ctx, receiverID).Return(&entities.User{ID: receiverID}, nil)
	f.chatRepo.On("FindChat", ctx, senderID, receiverID, (*uuid.UUID)(nil)).Return(existing, nil)

	chat, err := f.usecase.Start(ctx, senderID, &entities.CreateChatInput{ReceiverID: receiverID.String()})
	require.NoError(t, err)
	require.Equal(t, existing.ID, chat.ID)
	f.chatRepo.AssertNotCalled(t, "CreateChat", mock.Anything, mock.Anything)
}

func TestChatStart_Rejections(t *testing.T) {
	f := newChatFixture()
	ctx := context.Background()
	senderID := uuid.New()

	_, err := f.usecase.Start(ctx, senderID, &entities.CreateChatInput{ReceiverID: "not-a-uuid"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = f.usecase.Start(ctx, senderID, &entities.CreateChatInput{ReceiverID: senderID.String()})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	ghost := uuid.New()
	f.userRepo.On("GetByID", ctx, ghost).Return(nil, domainerrors.ErrNotFound)
	_, err = f.usecase.Start(ctx, senderID, &entities.CreateChatInput{ReceiverID: ghost.String()})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestChatSend(t *testing.T) {
	f := newChatFixture()
	ctx := context.Background()
	senderID, receiverID, chatID := uuid.New(), uuid.New(), uuid.New()

	f.chatRepo.On("GetChatByID", ctx, chatID).Return(&entities.Chat{
		ID:         chatID,
		SenderID:   senderID,
		ReceiverID: receiverID,
	}, nil)
	f.chatRepo.On("CreateMessage", ctx, mock.MatchedBy(func(m *entities.Message) bool {
		return m.ChatID == chatID && m.SenderID == senderID && m.Content == "still available?"
	})).Return(nil)
	f.notificationRepo.On("Create", ctx, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == receiverID && n.Type == entities.NotificationNewMessage
	})).Return(nil)

	message, err := f.usecase.Send(ctx, senderID, chatID, &entities.SendMessageInput{Content: "still available?"})
	require.NoError(t, err)
	require.Equal(t, "still available?", message.Content)
	f.notificationRepo.AssertExpectations(t)
}

func TestChatSend_Outsider(t *testing.T) {
	f := newChatFixture()
	ctx := context.Background()
	chatID := uuid.New()

	f.chatRepo.On("GetChatByID", ctx, chatID).Return(&entities.Chat{
		ID:         chatID,
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
	}, nil)

	_, err := f.usecase.Send(ctx, uuid.New(), chatID, &entities.SendMessageInput{Content: "hi"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.chatRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestChatMessages_MarksRead(t *testing.T) {
	f := newChatFixture()
	ctx := context.Background()
	userID, chatID := uuid.New(), uuid.New()

	f.chatRepo.On("GetChatByID", ctx, chatID).Return(&entities.Chat{
		ID:         chatID,
		SenderID:   userID,
		ReceiverID: uuid.New(),
	}, nil)
	f.chatRepo.On("GetMessagesByChatID", ctx, chatID, defaultPageLimit, 0).Return([]*entities.Message{
		{ChatID: chatID, Content: "hello"},
	}, 1, nil)
	f.chatRepo.On("MarkMessagesRead", ctx, chatID, userID).Return(nil)

	messages, total, err := f.usecase.Messages(ctx, userID, chatID, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, messages, 1)
	f.chatRepo.AssertExpectations(t)
}
