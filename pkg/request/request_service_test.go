package request

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/entities"
	"ShareBite-Backend/internal/testutil"
	"ShareBite-Backend/pkg/food"
	"ShareBite-Backend/pkg/ranking"
	"ShareBite-Backend/pkg/user"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendMail(to, subject, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return nil
}

type noS3 struct{}

func (noS3) UploadFile(context.Context, string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", domain.ErrStorageDisabled
}

func (noS3) GetPublicLinkKey(string) string { return "" }

type fixture struct {
	db       *gorm.DB
	foods    food.FoodService
	requests RequestService
	rankings ranking.RankingService
	mailer   *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	log, _ := logtest.NewNullLogger()
	mailer := &fakeMailer{}

	foodRepository := food.NewFoodRepository(db)
	rankingService := ranking.NewRankingService(ranking.NewRankingRepository(db), user.NewUserRepository(db), log)

	return &fixture{
		db:       db,
		foods:    food.NewFoodService(foodRepository, rankingService, noS3{}, log),
		requests: NewRequestService(NewRequestRepository(db), foodRepository, rankingService, mailer, "https://sharebite.example", log),
		rankings: rankingService,
		mailer:   mailer,
	}
}

func (f *fixture) score(t *testing.T, email string) int {
	t.Helper()
	got, err := f.rankings.GetMyScore(context.Background(), email, email)
	require.NoError(t, err)
	return got.ShareBiteScore
}

func (f *fixture) listing(t *testing.T, id string) *domain.Food {
	t.Helper()
	got, err := f.foods.GetFoodByID(context.Background(), id)
	require.NoError(t, err)
	return got
}

func (f *fixture) addFood(t *testing.T, donator string) *domain.Food {
	t.Helper()
	got, err := f.foods.AddFood(context.Background(), domain.AddFoodRequest{
		Name:           "Biryani",
		Quantity:       10,
		PickupLocation: "Dhaka",
		Donator:        domain.DonatorRequest{Name: "A"},
	}, donator)
	require.NoError(t, err)
	return got
}

func TestDonationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	listing := f.addFood(t, "a@x.com")
	assert.Equal(t, 100, f.score(t, "a@x.com"))

	req, err := f.requests.AddRequest(ctx, domain.AddRequestRequest{
		FoodID:         listing.ID,
		RequestorEmail: "b@x.com",
		RequestorName:  "B",
	}, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, 5, f.score(t, "b@x.com"))
	assert.Equal(t, 1, f.listing(t, listing.ID).RequestStats.Pending)
	assert.Equal(t, "a@x.com", req.DonatorEmail)

	accepted, err := f.requests.AcceptRequest(ctx, req.ID, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestAccepted, accepted.Status)

	got := f.listing(t, listing.ID)
	assert.Equal(t, domain.StatusDonated, got.Status)
	assert.Equal(t, 0, got.RequestStats.Pending)
	assert.Equal(t, 1, got.RequestStats.Accepted)

	mine, err := f.requests.GetMyRequests(ctx, "b@x.com", "b@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, domain.RequestAccepted, mine[0].Status)

	assert.Equal(t, 100, f.score(t, "a@x.com"))
	assert.Equal(t, 5, f.score(t, "b@x.com"))

	require.Len(t, f.mailer.sent, 2)
	assert.Equal(t, "a@x.com", f.mailer.sent[0].to)
	assert.Equal(t, "b@x.com", f.mailer.sent[1].to)
}

func TestAddRequestForbiddenForOtherRequestor(t *testing.T) {
	f := newFixture(t)
	listing := f.addFood(t, "a@x.com")

	_, err := f.requests.AddRequest(context.Background(), domain.AddRequestRequest{
		FoodID:         listing.ID,
		RequestorEmail: "b@x.com",
	}, "mallory@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, f.listing(t, listing.ID).RequestStats.Pending)
}

func TestAddRequestUnknownFood(t *testing.T) {
	f := newFixture(t)

	_, err := f.requests.AddRequest(context.Background(), domain.AddRequestRequest{
		FoodID:         uuid.NewString(),
		RequestorEmail: "b@x.com",
	}, "b@x.com")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestAddRequestSurvivesMailFailure(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")
	listing := f.addFood(t, "a@x.com")

	_, err := f.requests.AddRequest(context.Background(), domain.AddRequestRequest{
		FoodID:         listing.ID,
		RequestorEmail: "b@x.com",
	}, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, f.listing(t, listing.ID).RequestStats.Pending)
}

func TestAcceptRequiresDonator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	listing := f.addFood(t, "a@x.com")

	req, err := f.requests.AddRequest(ctx, domain.AddRequestRequest{FoodID: listing.ID, RequestorEmail: "b@x.com"}, "b@x.com")
	require.NoError(t, err)

	_, err = f.requests.AcceptRequest(ctx, req.ID, "b@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.requests.RejectRequest(ctx, req.ID, "mallory@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got := f.listing(t, listing.ID)
	assert.Equal(t, domain.StatusAvailable, got.Status)
	assert.Equal(t, 1, got.RequestStats.Pending)
}

func TestRejectThenAcceptConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	listing := f.addFood(t, "a@x.com")

	req, err := f.requests.AddRequest(ctx, domain.AddRequestRequest{FoodID: listing.ID, RequestorEmail: "b@x.com"}, "b@x.com")
	require.NoError(t, err)

	_, err = f.requests.RejectRequest(ctx, req.ID, "a@x.com")
	require.NoError(t, err)
	_, err = f.requests.AcceptRequest(ctx, req.ID, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)

	got := f.listing(t, listing.ID)
	assert.Equal(t, domain.StatusAvailable, got.Status)
	assert.Equal(t, domain.RequestStats{Pending: 0, Accepted: 0, Rejected: 1}, got.RequestStats)
}

func TestTransitionUnknownRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.requests.AcceptRequest(context.Background(), uuid.NewString(), "a@x.com")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	_, err = f.requests.RejectRequest(context.Background(), "bogus", "a@x.com")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestDeleteRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	listing := f.addFood(t, "a@x.com")

	req, err := f.requests.AddRequest(ctx, domain.AddRequestRequest{FoodID: listing.ID, RequestorEmail: "b@x.com"}, "b@x.com")
	require.NoError(t, err)

	assert.ErrorIs(t, f.requests.DeleteRequest(ctx, req.ID, "a@x.com"), domain.ErrForbidden)
	require.NoError(t, f.requests.DeleteRequest(ctx, req.ID, "b@x.com"))
	assert.Equal(t, 0, f.listing(t, listing.ID).RequestStats.Pending)
	assert.ErrorIs(t, f.requests.DeleteRequest(ctx, req.ID, "b@x.com"), domain.ErrRequestNotFound)

	assert.Equal(t, 5, f.score(t, "b@x.com"))
}

func TestMyRequestStatsAndLatest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	listing := f.addFood(t, "a@x.com")

	for i := 0; i < 6; i++ {
		_, err := f.requests.AddRequest(ctx, domain.AddRequestRequest{FoodID: listing.ID, RequestorEmail: "b@x.com"}, "b@x.com")
		require.NoError(t, err)
	}

	_, err := f.requests.GetMyRequestStats(ctx, "a@x.com", "b@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stats, err := f.requests.GetMyRequestStats(ctx, "b@x.com", "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCounts{domain.RequestPending: 6}, stats)

	latest, err := f.requests.GetLatestRequests(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, latest, domain.LatestRequestsLimit)

	none, err := f.requests.GetLatestRequests(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := f.requests.GetAllRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestScoresAccumulatePerFood(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		f.addFood(t, "a@x.com")
	}

	var count int64
	require.NoError(t, f.db.Model(&entities.Food{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
	assert.Equal(t, 300, f.score(t, "a@x.com"))
}
