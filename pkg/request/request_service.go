package request

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/entities"
	"ShareBite-Backend/internal/metrics"
	"ShareBite-Backend/internal/utils/mailing"
	"ShareBite-Backend/pkg/auth"
	"ShareBite-Backend/pkg/food"
	"ShareBite-Backend/pkg/ranking"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		GetAllRequests(ctx context.Context) ([]*domain.Request, error)
		GetRequestsForFood(ctx context.Context, foodID string) ([]*domain.Request, error)
		GetMyRequests(ctx context.Context, verifiedEmail, email string) ([]*domain.Request, error)
		GetMyRequestStats(ctx context.Context, verifiedEmail, email string) (domain.RequestStatusCounts, error)
		GetLatestRequests(ctx context.Context, verifiedEmail string) ([]*domain.Request, error)

		AddRequest(ctx context.Context, req domain.AddRequestRequest, verifiedEmail string) (*domain.Request, error)
		DeleteRequest(ctx context.Context, id string, verifiedEmail string) error
		AcceptRequest(ctx context.Context, id string, verifiedEmail string) (*domain.Request, error)
		RejectRequest(ctx context.Context, id string, verifiedEmail string) (*domain.Request, error)
	}

	requestService struct {
		requestRepository RequestRepository
		foodRepository    food.FoodRepository
		scorer            ranking.Scorer
		mailer            mailing.Mailer
		appURL            string
		log               logrus.FieldLogger
		now               func() time.Time
	}
)

func NewRequestService(
	requestRepository RequestRepository,
	foodRepository food.FoodRepository,
	scorer ranking.Scorer,
	mailer mailing.Mailer,
	appURL string,
	log logrus.FieldLogger,
) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		foodRepository:    foodRepository,
		scorer:            scorer,
		mailer:            mailer,
		appURL:            appURL,
		log:               log.WithField("component", "request"),
		now:               time.Now,
	}
}

func (s *requestService) GetAllRequests(ctx context.Context) ([]*domain.Request, error) {
	requests, err := s.requestRepository.GetAllRequests(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainRequests(requests), nil
}

func (s *requestService) GetRequestsForFood(ctx context.Context, foodID string) ([]*domain.Request, error) {
	requests, err := s.requestRepository.GetRequestsByFood(ctx, foodID)
	if err != nil {
		return nil, err
	}
	return toDomainRequests(requests), nil
}

func (s *requestService) GetMyRequests(ctx context.Context, verifiedEmail, email string) ([]*domain.Request, error) {
	if err := auth.RequireSelf(verifiedEmail, email); err != nil {
		return nil, err
	}

	requests, err := s.requestRepository.GetRequestsByRequestor(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDomainRequests(requests), nil
}

func (s *requestService) GetMyRequestStats(ctx context.Context, verifiedEmail, email string) (domain.RequestStatusCounts, error) {
	if err := auth.RequireSelf(verifiedEmail, email); err != nil {
		return nil, err
	}

	counts, err := s.requestRepository.GetStatusCountsByRequestor(ctx, email)
	if err != nil {
		return nil, err
	}
	return domain.RequestStatusCounts(counts), nil
}

func (s *requestService) GetLatestRequests(ctx context.Context, verifiedEmail string) ([]*domain.Request, error) {
	if verifiedEmail == "" {
		return nil, domain.ErrForbidden
	}

	requests, err := s.requestRepository.GetLatestRequestsByDonator(ctx, verifiedEmail, domain.LatestRequestsLimit)
	if err != nil {
		return nil, err
	}
	return toDomainRequests(requests), nil
}

// AddRequest records a Pending request on a listing and credits the
// requestor once the request is stored.
func (s *requestService) AddRequest(ctx context.Context, req domain.AddRequestRequest, verifiedEmail string) (*domain.Request, error) {
	if err := auth.RequireSelf(verifiedEmail, req.RequestorEmail); err != nil {
		return nil, err
	}

	listing, err := s.getFood(ctx, req.FoodID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	request := &entities.Request{
		FoodID:         listing.ID.String(),
		FoodName:       listing.Name,
		DonatorEmail:   listing.Donator.Email,
		RequestorEmail: req.RequestorEmail,
		RequestorName:  req.RequestorName,
		Notes:          req.Notes,
		Status:         domain.RequestPending,
		DonationDate:   now.Format(domain.DateLayout),
		DonationTime:   now.Format(domain.TimeLayout),
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	// Best effort: Accrue logs and counts its own failures.
	_ = s.scorer.Accrue(ctx, domain.EventRequestCreated, req.RequestorEmail, nil)

	subject, body := mailing.NewRequestMail(s.appURL, listing.Name, req.RequestorEmail)
	s.notify(mailing.KindNewRequest, listing.Donator.Email, subject, body)

	return toDomainRequest(request), nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string, verifiedEmail string) error {
	request, err := s.getRequest(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.RequireSelf(verifiedEmail, request.RequestorEmail); err != nil {
		return err
	}

	affected, err := s.requestRepository.DeleteRequest(ctx, request.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}
	if affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (s *requestService) AcceptRequest(ctx context.Context, id string, verifiedEmail string) (*domain.Request, error) {
	return s.transition(ctx, id, verifiedEmail, domain.RequestAccepted)
}

func (s *requestService) RejectRequest(ctx context.Context, id string, verifiedEmail string) (*domain.Request, error) {
	return s.transition(ctx, id, verifiedEmail, domain.RequestRejected)
}

// transition resolves the listing from the stored request, checks that the
// caller donated it, and then applies the status change.
func (s *requestService) transition(ctx context.Context, id, verifiedEmail, status string) (*domain.Request, error) {
	request, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	listing, err := s.getFood(ctx, request.FoodID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireSelf(verifiedEmail, listing.Donator.Email); err != nil {
		return nil, err
	}

	err = s.requestRepository.TransitionRequest(ctx, request.ID, request.FoodID, status)
	metrics.RecordRequestTransition(status, err)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": request.ID.String(),
		"food_id":    request.FoodID,
		"status":     status,
	}).Info("request status changed")

	kind := mailing.KindRequestAccepted
	if status == domain.RequestRejected {
		kind = mailing.KindRequestRejected
	}
	subject, body := mailing.RequestDecisionMail(s.appURL, listing.Name, status)
	s.notify(kind, request.RequestorEmail, subject, body)

	request.Status = status
	return toDomainRequest(request), nil
}

// notify sends a mail and never fails the caller.
func (s *requestService) notify(kind, to, subject, body string) {
	err := s.mailer.SendMail(to, subject, body)
	metrics.RecordNotification(kind, err)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"kind": kind,
			"to":   to,
		}).WithError(err).Warn("notification not sent")
	}
}

func (s *requestService) getRequest(ctx context.Context, id string) (*entities.Request, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	request, err := s.requestRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *requestService) getFood(ctx context.Context, id string) (*entities.Food, error) {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrFoodNotFound
	}

	listing, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return listing, nil
}

func toDomainRequest(r *entities.Request) *domain.Request {
	return &domain.Request{
		ID:             r.ID.String(),
		FoodID:         r.FoodID,
		FoodName:       r.FoodName,
		DonatorEmail:   r.DonatorEmail,
		RequestorEmail: r.RequestorEmail,
		RequestorName:  r.RequestorName,
		Notes:          r.Notes,
		Status:         r.Status,
		DonationDate:   r.DonationDate,
		DonationTime:   r.DonationTime,
		CreatedAt:      r.CreatedAt,
	}
}

func toDomainRequests(requests []*entities.Request) []*domain.Request {
	res := make([]*domain.Request, 0, len(requests))
	for _, r := range requests {
		res = append(res, toDomainRequest(r))
	}
	return res
}
