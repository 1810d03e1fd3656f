package ranking

import (
	"ShareBite-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RankingRepository interface {
		// ApplyScoreDelta is a single upsert: insert with score = delta, or add
		// delta to the stored score.
		ApplyScoreDelta(ctx context.Context, email string, delta int, displayName *string, at time.Time) error
		GetRankingByEmail(ctx context.Context, email string) (*entities.UserRanking, error)
		GetTopRankings(ctx context.Context, limit int) ([]*entities.UserRanking, error)

		GetTopDonor(ctx context.Context, fromDate, toDate string) (*DonorTotal, error)
		GetImpactStats(ctx context.Context) (*ImpactTotals, error)
	}

	DonorTotal struct {
		Email string
		Name  string
		Total int64
	}

	ImpactTotals struct {
		TotalMeals int64
		TotalAreas int64
	}

	rankingRepository struct {
		db *gorm.DB
	}
)

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

func (r *rankingRepository) ApplyScoreDelta(ctx context.Context, email string, delta int, displayName *string, at time.Time) error {
	ranking := &entities.UserRanking{
		Email:          email,
		ShareBiteScore: delta,
		LastUpdated:    at,
	}

	updates := map[string]interface{}{
		"share_bite_score": gorm.Expr("user_rankings.share_bite_score + ?", delta),
		"last_updated":     at,
	}
	if displayName != nil {
		ranking.Name = *displayName
		updates["name"] = *displayName
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(ranking).Error
}

func (r *rankingRepository) GetRankingByEmail(ctx context.Context, email string) (*entities.UserRanking, error) {
	var ranking entities.UserRanking
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&ranking).Error; err != nil {
		return nil, err
	}
	return &ranking, nil
}

func (r *rankingRepository) GetTopRankings(ctx context.Context, limit int) ([]*entities.UserRanking, error) {
	var rankings []*entities.UserRanking
	if err := r.db.WithContext(ctx).
		Order("share_bite_score DESC").
		Order("email ASC").
		Limit(limit).
		Find(&rankings).Error; err != nil {
		return nil, err
	}
	return rankings, nil
}

// GetTopDonor sums quantity per donator over foods donated in
// [fromDate, toDate) and returns the largest group, or nil when the window is
// empty. Dates are YYYY-MM-DD strings and compare lexically.
func (r *rankingRepository) GetTopDonor(ctx context.Context, fromDate, toDate string) (*DonorTotal, error) {
	var rows []*DonorTotal
	if err := r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Select("donator_email AS email, MAX(donator_name) AS name, COALESCE(SUM(quantity), 0) AS total").
		Where("donation_date >= ? AND donation_date < ?", fromDate, toDate).
		Group("donator_email").
		Order("total DESC").
		Order("donator_email ASC").
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *rankingRepository) GetImpactStats(ctx context.Context) (*ImpactTotals, error) {
	var totals ImpactTotals
	if err := r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Select("COALESCE(SUM(quantity), 0) AS total_meals, COUNT(DISTINCT pickup_location) AS total_areas").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
