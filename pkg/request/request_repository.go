package request

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		// CreateRequest inserts req and bumps the pending counter of its food
		// in one transaction.
		CreateRequest(ctx context.Context, req *entities.Request) error
		GetRequestByID(ctx context.Context, id uuid.UUID) (*entities.Request, error)
		GetAllRequests(ctx context.Context) ([]*entities.Request, error)
		GetRequestsByFood(ctx context.Context, foodID string) ([]*entities.Request, error)
		GetRequestsByRequestor(ctx context.Context, email string) ([]*entities.Request, error)
		GetLatestRequestsByDonator(ctx context.Context, email string, limit int) ([]*entities.Request, error)
		GetStatusCountsByRequestor(ctx context.Context, email string) (map[string]int64, error)

		// TransitionRequest moves a Pending request to status and adjusts the
		// counters of foodID. It fails with domain.ErrRequestNotPending when
		// the request already left Pending.
		TransitionRequest(ctx context.Context, id uuid.UUID, foodID string, status string) error

		// DeleteRequest removes the request, releasing its pending slot on the
		// food when it was still Pending.
		DeleteRequest(ctx context.Context, id uuid.UUID) (int64, error)
	}

	requestRepository struct {
		db *gorm.DB
	}

	statusCount struct {
		Status string
		Count  int64
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func decrementFloor(column string) interface{} {
	return gorm.Expr("CASE WHEN " + column + " > 0 THEN " + column + " - 1 ELSE 0 END")
}

func (r *requestRepository) CreateRequest(ctx context.Context, req *entities.Request) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Food{}).
			Where("id = ?", req.FoodID).
			UpdateColumn("request_stats_pending", gorm.Expr("request_stats_pending + 1")).Error
	})
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id uuid.UUID) (*entities.Request, error) {
	var req entities.Request
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) GetAllRequests(ctx context.Context) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetRequestsByFood(ctx context.Context, foodID string) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetRequestsByRequestor(ctx context.Context, email string) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).
		Where("requestor_email = ?", email).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetLatestRequestsByDonator(ctx context.Context, email string, limit int) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).
		Where("donator_email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetStatusCountsByRequestor(ctx context.Context, email string) (map[string]int64, error) {
	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&entities.Request{}).
		Select("status, COUNT(*) AS count").
		Where("requestor_email = ?", email).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *requestRepository) TransitionRequest(ctx context.Context, id uuid.UUID, foodID string, status string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Request{}).
			Where("id = ? AND status = ?", id, domain.RequestPending).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}

		updates := map[string]interface{}{
			"request_stats_pending": decrementFloor("request_stats_pending"),
		}
		switch status {
		case domain.RequestAccepted:
			updates["request_stats_accepted"] = gorm.Expr("request_stats_accepted + 1")
			updates["status"] = domain.StatusDonated
		case domain.RequestRejected:
			updates["request_stats_rejected"] = gorm.Expr("request_stats_rejected + 1")
		}

		return tx.Model(&entities.Food{}).
			Where("id = ?", foodID).
			UpdateColumns(updates).Error
	})
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req entities.Request
		if err := tx.Where("id = ?", id).First(&req).Error; err != nil {
			return err
		}

		// Only a delete that still sees Pending releases the pending slot.
		result := tx.Where("id = ? AND status = ?", id, domain.RequestPending).Delete(&entities.Request{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 {
			affected = result.RowsAffected
			return tx.Model(&entities.Food{}).
				Where("id = ?", req.FoodID).
				UpdateColumn("request_stats_pending", decrementFloor("request_stats_pending")).Error
		}

		result = tx.Where("id = ?", id).Delete(&entities.Request{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
