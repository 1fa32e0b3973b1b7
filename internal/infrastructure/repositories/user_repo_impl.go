package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/models"
	"lizexpress.backend/pkg/utils"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(user)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists all mutable profile fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"full_name":              m.FullName,
			"phone_number":           m.PhoneNumber,
			"residential_address":    m.ResidentialAddress,
			"date_of_birth":          m.DateOfBirth,
			"country":                m.Country,
			"state":                  m.State,
			"avatar_url":             m.AvatarURL,
			"is_verified":            m.IsVerified,
			"verification_submitted": m.VerificationSubmitted,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetVerified flips the verification flag
func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified": verified,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetStatus updates the moderation standing of an account
func (r *UserRepository) SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft-deletes a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with optional search over email and full name
func (r *UserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("email LIKE ? OR full_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.User
	listQuery := query.Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit).Offset(offset)
	}
	if err := listQuery.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, int(total), nil
}

// CountSince counts users created at or after the given unix timestamp
func (r *UserRepository) CountSince(ctx context.Context, since int64) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.User{}).
		Where("created_at >= ?", time.Unix(since, 0)).
		Count(&total).Error
	return total, err
}

func (r *UserRepository) toModel(u *entities.User) *models.User {
	return &models.User{
		ID:                    u.ID,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Role:                  string(u.Role),
		Status:                string(u.Status),
		FullName:              u.FullName.Ptr(),
		PhoneNumber:           u.PhoneNumber.Ptr(),
		ResidentialAddress:    u.ResidentialAddress.Ptr(),
		DateOfBirth:           u.DateOfBirth.Ptr(),
		Country:               u.Country.Ptr(),
		State:                 u.State.Ptr(),
		AvatarURL:             u.AvatarURL.Ptr(),
		IsVerified:            u.IsVerified,
		VerificationSubmitted: u.VerificationSubmitted,
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                    m.ID,
		Email:                 m.Email,
		PasswordHash:          m.PasswordHash,
		Role:                  entities.UserRole(m.Role),
		Status:                entities.UserStatus(m.Status),
		FullName:              null.StringFromPtr(m.FullName),
		PhoneNumber:           null.StringFromPtr(m.PhoneNumber),
		ResidentialAddress:    null.StringFromPtr(m.ResidentialAddress),
		DateOfBirth:           null.StringFromPtr(m.DateOfBirth),
		Country:               null.StringFromPtr(m.Country),
		State:                 null.StringFromPtr(m.State),
		AvatarURL:             null.StringFromPtr(m.AvatarURL),
		IsVerified:            m.IsVerified,
		VerificationSubmitted: m.VerificationSubmitted,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
