package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID         string    `gorm:"primaryKey;size:64"`
	TelegramID int64     `gorm:"uniqueIndex;not null"`
	FirstName  string    `gorm:"size:255;not null"`
	LastName   string    `gorm:"size:255"`
	Username   string    `gorm:"index;size:64"`
	AvatarURL  string    `gorm:"size:1024"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "telegram_users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// FindOrCreate implements domain.UserRepository
func (r *UserRepositoryImpl) FindOrCreate(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error) {
	var user *domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row DBUser
		err := tx.Where("telegram_id = ?", profile.TelegramID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = domain.NewUser(profile)
			return tx.Create(r.domainToDB(user)).Error
		}
		if err != nil {
			return err
		}

		user = r.dbToDomain(&row)
		user.Apply(profile)
		return tx.Model(&row).Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert telegram user %d: %w", profile.TelegramID, err)
	}
	return user, nil
}

// Reset implements domain.UserRepository
func (r *UserRepositoryImpl) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&DBUser{}).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Username:   user.Username,
		AvatarURL:  user.AvatarURL,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(row *DBUser) *domain.User {
	return &domain.User{
		ID:         row.ID,
		TelegramID: row.TelegramID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Username:   row.Username,
		AvatarURL:  row.AvatarURL,
	}
}

var _ domain.UserRepository = (*UserRepositoryImpl)(nil)
