package user

import (
	"ShareBite-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		// CreateUserIfNotExists inserts u unless a user with the same email
		// exists. It reports whether a row was inserted.
		CreateUserIfNotExists(ctx context.Context, u *entities.User) (bool, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUserProfile(ctx context.Context, email string, name, image *string) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUserIfNotExists(ctx context.Context, u *entities.User) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(u)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateUserProfile(ctx context.Context, email string, name, image *string) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if name != nil {
		updates["name"] = *name
	}
	if image != nil {
		updates["image"] = *image
	}

	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Updates(updates)
	return result.RowsAffected, result.Error
}
