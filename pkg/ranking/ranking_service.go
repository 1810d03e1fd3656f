package ranking

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/metrics"
	"ShareBite-Backend/pkg/auth"
	"ShareBite-Backend/pkg/user"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type (
	RankingService interface {
		Scorer

		GetTopRankings(ctx context.Context, limit int) ([]domain.RankedUser, error)
		GetMyScore(ctx context.Context, verifiedEmail, email string) (*domain.MyScore, error)
		GetTopDonorThisMonth(ctx context.Context) (*domain.TopDonorResult, error)
		GetImpactStats(ctx context.Context) (*domain.ImpactStats, error)
	}

	// Scorer is the slice of the ranking service the food and request
	// services call after their primary write.
	Scorer interface {
		Accrue(ctx context.Context, event, email string, displayName *string) error
	}

	rankingService struct {
		rankingRepository RankingRepository
		userRepository    user.UserRepository
		log               logrus.FieldLogger
		now               func() time.Time
	}
)

func NewRankingService(rankingRepository RankingRepository, userRepository user.UserRepository, log logrus.FieldLogger) RankingService {
	return &rankingService{
		rankingRepository: rankingRepository,
		userRepository:    userRepository,
		log:               log.WithField("component", "ranking"),
		now:               time.Now,
	}
}

// scoreFor maps a creation event to its fixed delta.
func scoreFor(event string) (int, bool) {
	switch event {
	case domain.EventFoodCreated:
		return domain.SCORE_FOOD_CREATED, true
	case domain.EventRequestCreated:
		return domain.SCORE_REQUEST_CREATED, true
	}
	return 0, false
}

// Accrue applies the delta for event to email. Failures are logged and
// counted here; callers treat the returned error as informational only.
func (s *rankingService) Accrue(ctx context.Context, event, email string, displayName *string) error {
	delta, ok := scoreFor(event)
	if !ok {
		return fmt.Errorf("unknown score event %q", event)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		metrics.RecordScoringFailure(event)
		s.log.WithField("event", event).Error("score accrual skipped: empty email")
		return fmt.Errorf("score accrual for %s: empty email", event)
	}

	if err := s.rankingRepository.ApplyScoreDelta(ctx, email, delta, displayName, s.now()); err != nil {
		metrics.RecordScoringFailure(event)
		s.log.WithFields(logrus.Fields{
			"email": email,
			"delta": delta,
			"event": event,
		}).WithError(err).Error("score accrual failed")
		return err
	}

	metrics.RecordScoreDelta(event, delta)
	return nil
}

func (s *rankingService) GetTopRankings(ctx context.Context, limit int) ([]domain.RankedUser, error) {
	if limit < 1 {
		limit = domain.DefaultTopRankingsLimit
	}
	if limit > domain.MaxTopRankingsLimit {
		limit = domain.MaxTopRankingsLimit
	}

	rankings, err := s.rankingRepository.GetTopRankings(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RankedUser, 0, len(rankings))
	for _, r := range rankings {
		res = append(res, domain.RankedUser{
			Name:           r.Name,
			Email:          r.Email,
			ShareBiteScore: clampScore(r.ShareBiteScore),
		})
	}
	return res, nil
}

func (s *rankingService) GetMyScore(ctx context.Context, verifiedEmail, email string) (*domain.MyScore, error) {
	if email == "" {
		email = verifiedEmail
	}
	if err := auth.RequireSelf(verifiedEmail, email); err != nil {
		return nil, err
	}

	ranking, err := s.rankingRepository.GetRankingByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return &domain.MyScore{Email: email, ShareBiteScore: 0}, nil
		}
		return nil, err
	}

	return &domain.MyScore{
		Email:          ranking.Email,
		ShareBiteScore: clampScore(ranking.ShareBiteScore),
	}, nil
}

func (s *rankingService) GetTopDonorThisMonth(ctx context.Context) (*domain.TopDonorResult, error) {
	start, end := MonthWindow(s.now())

	total, err := s.rankingRepository.GetTopDonor(ctx, start, end)
	if err != nil {
		return nil, err
	}

	res := &domain.TopDonorResult{PeriodStart: start, PeriodEnd: end}
	if total == nil {
		return res, nil
	}

	donor := &domain.TopDonor{Email: total.Email, Name: total.Name}
	if u, err := s.userRepository.GetUserByEmail(ctx, total.Email); err == nil {
		if u.Name != "" {
			donor.Name = u.Name
		}
		donor.Image = u.Image
	} else if !isNotFound(err) {
		return nil, err
	}

	res.Donor = donor
	res.TotalMeals = total.Total
	return res, nil
}

func (s *rankingService) GetImpactStats(ctx context.Context) (*domain.ImpactStats, error) {
	totals, err := s.rankingRepository.GetImpactStats(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ImpactStats{
		TotalMeals: totals.TotalMeals,
		TotalAreas: totals.TotalAreas,
	}, nil
}

// MonthWindow returns [first day of now's month, first day of the next month)
// as YYYY-MM-DD strings in now's location.
func MonthWindow(now time.Time) (string, string) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)
	return start.Format(domain.DateLayout), end.Format(domain.DateLayout)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
