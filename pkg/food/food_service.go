package food

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/entities"
	"ShareBite-Backend/internal/utils/storage"
	"ShareBite-Backend/pkg/auth"
	"ShareBite-Backend/pkg/ranking"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		GetAllFoods(ctx context.Context) ([]*domain.Food, error)
		GetTopFoodsByQuantity(ctx context.Context) ([]*domain.Food, error)
		GetAvailableFoods(ctx context.Context, query domain.AvailableFoodsQuery) (*domain.AvailableFoods, error)
		GetFoodByID(ctx context.Context, id string) (*domain.Food, error)
		GetMyFoods(ctx context.Context, verifiedEmail, email string) ([]*domain.Food, error)
		GetMyFoodChart(ctx context.Context, verifiedEmail, email string) ([]*domain.Food, error)
		GetMyFoodStats(ctx context.Context, verifiedEmail, email string) (*domain.FoodStats, error)

		AddFood(ctx context.Context, req domain.AddFoodRequest, verifiedEmail string) (*domain.Food, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, verifiedEmail string) (*domain.Food, error)
		DeleteFood(ctx context.Context, id string, verifiedEmail string) error
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, verifiedEmail string) (*domain.UploadImageResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		scorer         ranking.Scorer
		s3             storage.AwsS3
		log            logrus.FieldLogger
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, scorer ranking.Scorer, s3 storage.AwsS3, log logrus.FieldLogger) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		scorer:         scorer,
		s3:             s3,
		log:            log.WithField("component", "food"),
		now:            time.Now,
	}
}

func (s *foodService) GetAllFoods(ctx context.Context) ([]*domain.Food, error) {
	foods, err := s.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainFoods(foods), nil
}

func (s *foodService) GetTopFoodsByQuantity(ctx context.Context) ([]*domain.Food, error) {
	foods, err := s.foodRepository.GetTopFoodsByQuantity(ctx, domain.TopFoodsByQuantityLimit)
	if err != nil {
		return nil, err
	}
	return toDomainFoods(foods), nil
}

func (s *foodService) GetAvailableFoods(ctx context.Context, query domain.AvailableFoodsQuery) (*domain.AvailableFoods, error) {
	if query.Limit < 1 {
		query.Limit = domain.AvailableFoodsLimit
	}
	if query.Skip < 0 {
		query.Skip = 0
	}

	foods, total, err := s.foodRepository.GetAvailableFoods(ctx, query.Search, query.Limit, query.Skip)
	if err != nil {
		return nil, err
	}

	return &domain.AvailableFoods{
		Foods: toDomainFoods(foods),
		Total: total,
	}, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (*domain.Food, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomainFood(food), nil
}

func (s *foodService) GetMyFoods(ctx context.Context, verifiedEmail, email string) ([]*domain.Food, error) {
	if err := auth.RequireSelf(verifiedEmail, email); err != nil {
		return nil, err
	}

	foods, err := s.foodRepository.GetFoodsByDonator(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDomainFoods(foods), nil
}

func (s *foodService) GetMyFoodChart(ctx context.Context, verifiedEmail, email string) ([]*domain.Food, error) {
	if err := auth.RequireSelf(verifiedEmail, email); err != nil {
		return nil, err
	}

	foods, err := s.foodRepository.GetLatestFoodsByDonator(ctx, email, domain.MyChartLimit)
	if err != nil {
		return nil, err
	}
	return toDomainFoods(foods), nil
}

func (s *foodService) GetMyFoodStats(ctx context.Context, verifiedEmail, email string) (*domain.FoodStats, error) {
	if err := auth.RequireSelf(verifiedEmail, email); err != nil {
		return nil, err
	}

	totalDonations, totalServings, err := s.foodRepository.GetDonatorStats(ctx, email)
	if err != nil {
		return nil, err
	}

	return &domain.FoodStats{
		TotalDonations: totalDonations,
		TotalServings:  totalServings,
	}, nil
}

// AddFood stores a listing owned by the caller and then credits the donator.
// A failed credit is logged by the scorer and does not fail the call.
func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest, verifiedEmail string) (*domain.Food, error) {
	if verifiedEmail == "" {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	food := &entities.Food{
		Name:           req.Name,
		Image:          req.Image,
		Quantity:       req.Quantity,
		Status:         domain.StatusAvailable,
		PickupLocation: req.PickupLocation,
		ExpiredAt:      req.ExpiredAt,
		Notes:          req.Notes,
		Donator: entities.Donator{
			Email: verifiedEmail,
			Name:  req.Donator.Name,
			Image: req.Donator.Image,
		},
		DonationDate: now.Format(domain.DateLayout),
		DonationTime: now.Format(domain.TimeLayout),
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return nil, err
	}

	donatorName := req.Donator.Name
	// Best effort: Accrue logs and counts its own failures.
	_ = s.scorer.Accrue(ctx, domain.EventFoodCreated, verifiedEmail, &donatorName)

	return toDomainFood(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, verifiedEmail string) (*domain.Food, error) {
	food, err := s.getOwnedFood(ctx, id, verifiedEmail)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": s.now(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.PickupLocation != "" {
		updates["pickup_location"] = req.PickupLocation
	}
	if req.ExpiredAt != nil {
		updates["expired_at"] = *req.ExpiredAt
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := s.foodRepository.UpdateFood(ctx, food.ID, updates); err != nil {
		return nil, err
	}

	updated, err := s.foodRepository.GetFoodByID(ctx, food.ID)
	if err != nil {
		return nil, err
	}
	return toDomainFood(updated), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, verifiedEmail string) error {
	food, err := s.getOwnedFood(ctx, id, verifiedEmail)
	if err != nil {
		return err
	}

	affected, err := s.foodRepository.DeleteFood(ctx, food.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFoodNotFound
	}

	s.log.WithFields(logrus.Fields{
		"food_id": food.ID.String(),
		"email":   verifiedEmail,
	}).Info("food deleted")
	return nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, verifiedEmail string) (*domain.UploadImageResponse, error) {
	if verifiedEmail == "" {
		return nil, domain.ErrForbidden
	}

	objectKey, err := s.s3.UploadFile(
		ctx,
		fmt.Sprintf("food-%s", uuid.New().String()),
		req.Image,
		"foods",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	return &domain.UploadImageResponse{URL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

// getFood resolves id to a stored listing. Ids that are not UUIDs cannot name
// a listing and report ErrFoodNotFound.
func (s *foodService) getFood(ctx context.Context, id string) (*entities.Food, error) {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrFoodNotFound
	}

	food, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) getOwnedFood(ctx context.Context, id, verifiedEmail string) (*entities.Food, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireSelf(verifiedEmail, food.Donator.Email); err != nil {
		return nil, err
	}
	return food, nil
}

func toDomainFood(f *entities.Food) *domain.Food {
	return &domain.Food{
		ID:             f.ID.String(),
		Name:           f.Name,
		Image:          f.Image,
		Quantity:       f.Quantity,
		Status:         f.Status,
		PickupLocation: f.PickupLocation,
		ExpiredAt:      f.ExpiredAt,
		Notes:          f.Notes,
		Donator: domain.Donator{
			Email: f.Donator.Email,
			Name:  f.Donator.Name,
			Image: f.Donator.Image,
		},
		DonationDate: f.DonationDate,
		DonationTime: f.DonationTime,
		RequestStats: domain.RequestStats{
			Pending:  f.RequestStats.Pending,
			Accepted: f.RequestStats.Accepted,
			Rejected: f.RequestStats.Rejected,
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toDomainFoods(foods []*entities.Food) []*domain.Food {
	res := make([]*domain.Food, 0, len(foods))
	for _, f := range foods {
		res = append(res, toDomainFood(f))
	}
	return res
}
