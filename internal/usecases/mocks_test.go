package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"lizexpress.backend/internal/domain/entities"
	"lizexpress.backend/internal/infrastructure/gateway"
	"lizexpress.backend/internal/infrastructure/storage"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

func (m *MockUserRepository) SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) CountSince(ctx context.Context, since int64) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *entities.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, filter entities.ItemFilter, limit, offset int) ([]*entities.Item, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Item), args.Int(1), args.Error(2)
}

func (m *MockItemRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) CountByStatus(ctx context.Context, status entities.ItemStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) Approve(ctx context.Context, id, adminID uuid.UUID) error {
	return m.Called(ctx, id, adminID).Error(0)
}

func (m *MockItemRepository) Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error {
	return m.Called(ctx, id, adminID, reason).Error(0)
}

func (m *MockItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) GetByTxRef(ctx context.Context, txRef string) (*entities.Payment, error) {
	args := m.Called(ctx, txRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Payment), args.Int(1), args.Error(2)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, txRef string, status entities.PaymentStatus, gatewayTxID string) error {
	return m.Called(ctx, txRef, status, gatewayTxID).Error(0)
}

func (m *MockPaymentRepository) MarkSuccessful(ctx context.Context, txRef string, gatewayTxID string) (bool, error) {
	args := m.Called(ctx, txRef, gatewayTxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) LinkItem(ctx context.Context, txRef string, itemID uuid.UUID) error {
	return m.Called(ctx, txRef, itemID).Error(0)
}

func (m *MockPaymentRepository) GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*entities.Payment, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) MarkAbandoned(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

// Mock NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Notification), args.Int(1), args.Error(2)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, verification *entities.Verification) error {
	return m.Called(ctx, verification).Error(0)
}

func (m *MockVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Verification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Verification), args.Error(1)
}

func (m *MockVerificationRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.Verification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Verification), args.Error(1)
}

func (m *MockVerificationRepository) ListByStatus(ctx context.Context, status entities.VerificationStatus, limit, offset int) ([]*entities.Verification, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Verification), args.Int(1), args.Error(2)
}

func (m *MockVerificationRepository) Review(ctx context.Context, id, reviewerID uuid.UUID, status entities.VerificationStatus, reason string) error {
	return m.Called(ctx, id, reviewerID, status, reason).Error(0)
}

// Mock FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockFavoriteRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

// Mock ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateChat(ctx context.Context, chat *entities.Chat) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *MockChatRepository) GetChatByID(ctx context.Context, id uuid.UUID) (*entities.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Chat), args.Error(1)
}

func (m *MockChatRepository) GetChatsByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Chat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Chat), args.Error(1)
}

func (m *MockChatRepository) FindChat(ctx context.Context, senderID, receiverID uuid.UUID, itemID *uuid.UUID) (*entities.Chat, error) {
	args := m.Called(ctx, senderID, receiverID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Chat), args.Error(1)
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockChatRepository) GetMessagesByChatID(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]*entities.Message, int, error) {
	args := m.Called(ctx, chatID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Message), args.Int(1), args.Error(2)
}

func (m *MockChatRepository) MarkMessagesRead(ctx context.Context, chatID, readerID uuid.UUID) error {
	return m.Called(ctx, chatID, readerID).Error(0)
}

func (m *MockChatRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, upload storage.Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) PutAll(ctx context.Context, uploads []storage.Upload) ([]string, error) {
	args := m.Called(ctx, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockObjectStore) Remove(ctx context.Context, publicURL string) error {
	return m.Called(ctx, publicURL).Error(0)
}

// Mock ListingDraftStore
type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) Put(ctx context.Context, txRef string, draft interface{}, expiration time.Duration) error {
	return m.Called(ctx, txRef, draft, expiration).Error(0)
}

func (m *MockDraftStore) Get(ctx context.Context, txRef string, out interface{}) error {
	args := m.Called(ctx, txRef, out)
	if fn, ok := args.Get(0).(func(interface{})); ok {
		fn(out)
		return args.Error(1)
	}
	return args.Error(1)
}

func (m *MockDraftStore) Delete(ctx context.Context, txRef string) error {
	return m.Called(ctx, txRef).Error(0)
}

// Mock gateway client
type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) VerifyTransaction(ctx context.Context, txRef string) (*gateway.VerificationResult, error) {
	args := m.Called(ctx, txRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.VerificationResult), args.Error(1)
}

func (m *MockGatewayClient) VerifyWebhookSignature(signature string) bool {
	return m.Called(signature).Bool(0)
}

// Mock reset token store
type MockResetTokenStore struct {
	mock.Mock
}

func (m *MockResetTokenStore) Put(ctx context.Context, token, userID string, expiration time.Duration) error {
	return m.Called(ctx, token, userID, expiration).Error(0)
}

func (m *MockResetTokenStore) Get(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockResetTokenStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
