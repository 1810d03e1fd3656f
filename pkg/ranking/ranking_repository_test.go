package ranking

import (
	"ShareBite-Backend/entities"
	"ShareBite-Backend/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFood(t *testing.T, db *gorm.DB, email, name, location, date string, quantity int) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Food{
		Name:           "rice",
		Quantity:       quantity,
		PickupLocation: location,
		Donator:        entities.Donator{Email: email, Name: name},
		DonationDate:   date,
		DonationTime:   "12:00:00",
	}).Error)
}

func TestApplyScoreDeltaUpsert(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	name := "Ann"
	require.NoError(t, repo.ApplyScoreDelta(ctx, "ann@x.io", 100, &name, at))
	require.NoError(t, repo.ApplyScoreDelta(ctx, "ann@x.io", 5, nil, at.Add(time.Hour)))

	got, err := repo.GetRankingByEmail(ctx, "ann@x.io")
	require.NoError(t, err)
	assert.Equal(t, 105, got.ShareBiteScore)
	assert.Equal(t, "Ann", got.Name, "nil display name must not clear the stored name")

	renamed := "Annie"
	require.NoError(t, repo.ApplyScoreDelta(ctx, "ann@x.io", 100, &renamed, at))
	got, err = repo.GetRankingByEmail(ctx, "ann@x.io")
	require.NoError(t, err)
	assert.Equal(t, 205, got.ShareBiteScore)
	assert.Equal(t, "Annie", got.Name)

	var count int64
	require.NoError(t, db.Model(&entities.UserRanking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyScoreDeltaFirstEventIsRequest(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ApplyScoreDelta(ctx, "bob@x.io", 5, nil, time.Now()))

	got, err := repo.GetRankingByEmail(ctx, "bob@x.io")
	require.NoError(t, err)
	assert.Equal(t, 5, got.ShareBiteScore)
	assert.Empty(t, got.Name)
}

func TestGetRankingByEmailMissing(t *testing.T) {
	repo := NewRankingRepository(testutil.NewSQLiteDB(t))

	_, err := repo.GetRankingByEmail(context.Background(), "nobody@x.io")
	assert.True(t, isNotFound(err))
}

func TestGetTopRankingsOrderAndTieBreak(t *testing.T) {
	repo := NewRankingRepository(testutil.NewSQLiteDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.ApplyScoreDelta(ctx, "carol@x.io", 100, nil, now))
	require.NoError(t, repo.ApplyScoreDelta(ctx, "bob@x.io", 100, nil, now))
	require.NoError(t, repo.ApplyScoreDelta(ctx, "ann@x.io", 205, nil, now))
	require.NoError(t, repo.ApplyScoreDelta(ctx, "dan@x.io", 5, nil, now))

	top, err := repo.GetTopRankings(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "ann@x.io", top[0].Email)
	assert.Equal(t, "bob@x.io", top[1].Email)
	assert.Equal(t, "carol@x.io", top[2].Email)
}

func TestGetTopDonorWindowBoundaries(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	seedFood(t, db, "ann@x.io", "Ann", "Dhaka", "2024-05-31", 10)
	seedFood(t, db, "ann@x.io", "Ann", "Dhaka", "2024-05-01", 3)
	seedFood(t, db, "bob@x.io", "Bob", "Khulna", "2024-06-01", 500)
	seedFood(t, db, "bob@x.io", "Bob", "Khulna", "2024-04-30", 500)
	seedFood(t, db, "carol@x.io", "Carol", "Sylhet", "2024-05-15", 12)

	got, err := repo.GetTopDonor(ctx, "2024-05-01", "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ann@x.io", got.Email)
	assert.Equal(t, "Ann", got.Name)
	assert.EqualValues(t, 13, got.Total)
}

func TestGetTopDonorTieBreakAndEmpty(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	got, err := repo.GetTopDonor(ctx, "2024-05-01", "2024-06-01")
	require.NoError(t, err)
	assert.Nil(t, got)

	seedFood(t, db, "zed@x.io", "Zed", "A", "2024-05-02", 7)
	seedFood(t, db, "amy@x.io", "Amy", "B", "2024-05-03", 7)

	got, err = repo.GetTopDonor(ctx, "2024-05-01", "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "amy@x.io", got.Email)
}

func TestRepositoryGetImpactStats(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewRankingRepository(db)
	ctx := context.Background()

	empty, err := repo.GetImpactStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalMeals)
	assert.Zero(t, empty.TotalAreas)

	seedFood(t, db, "ann@x.io", "Ann", "Dhaka", "2024-05-01", 10)
	seedFood(t, db, "bob@x.io", "Bob", "Dhaka", "2024-05-02", 4)
	seedFood(t, db, "bob@x.io", "Bob", "Khulna", "2024-05-03", 6)

	got, err := repo.GetImpactStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 20, got.TotalMeals)
	assert.EqualValues(t, 2, got.TotalAreas)
}
