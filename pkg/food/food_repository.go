package food

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/entities"
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id uuid.UUID) (*entities.Food, error)
		GetAllFoods(ctx context.Context) ([]*entities.Food, error)
		GetTopFoodsByQuantity(ctx context.Context, limit int) ([]*entities.Food, error)
		GetAvailableFoods(ctx context.Context, search string, limit, skip int) ([]*entities.Food, int64, error)
		GetFoodsByDonator(ctx context.Context, email string) ([]*entities.Food, error)
		GetLatestFoodsByDonator(ctx context.Context, email string, limit int) ([]*entities.Food, error)
		UpdateFood(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
		DeleteFood(ctx context.Context, id uuid.UUID) (int64, error)

		// GetDonatorStats returns the listing count and summed quantity for
		// email, zeros when there are none.
		GetDonatorStats(ctx context.Context, email string) (int64, int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uuid.UUID) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetAllFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetTopFoodsByQuantity(ctx context.Context, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Order("quantity DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetAvailableFoods(ctx context.Context, search string, limit, skip int) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	var count int64

	query := r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Where("status = ?", domain.StatusAvailable)
	if search != "" {
		query = query.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(search)+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}

func (r *foodRepository) GetFoodsByDonator(ctx context.Context, email string) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("donator_email = ?", email).
		Order("created_at DESC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetLatestFoodsByDonator(ctx context.Context, email string, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("donator_email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{})
	return result.RowsAffected, result.Error
}

func (r *foodRepository) GetDonatorStats(ctx context.Context, email string) (int64, int64, error) {
	var totalDonations, totalServings int64

	row := r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Select("COUNT(*), COALESCE(SUM(quantity), 0)").
		Where("donator_email = ?", email).
		Row()
	if err := row.Scan(&totalDonations, &totalServings); err != nil {
		return 0, 0, err
	}

	return totalDonations, totalServings, nil
}
