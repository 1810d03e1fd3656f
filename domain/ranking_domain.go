package domain

var (
	MessageSuccessGetTopRankings = "top rankings retrieved successfully"
	MessageSuccessGetTopDonor    = "top donor retrieved successfully"
	MessageSuccessGetImpactStats = "impact statistics retrieved successfully"

	MessageFailedGetTopRankings = "failed to retrieve top rankings"
	MessageFailedGetTopDonor    = "failed to retrieve top donor"
	MessageFailedGetImpactStats = "failed to retrieve impact statistics"
)

const (
	// Score deltas per creation event. Nothing is awarded or taken back on
	// accept, reject, update or delete.
	SCORE_FOOD_CREATED    = 100
	SCORE_REQUEST_CREATED = 5

	DefaultTopRankingsLimit = 3
	MaxTopRankingsLimit     = 100

	EventFoodCreated    = "food_created"
	EventRequestCreated = "request_created"
)

type (
	RankedUser struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		ShareBiteScore int    `json:"share_bite_score"`
	}

	MyScore struct {
		Email          string `json:"email"`
		ShareBiteScore int    `json:"share_bite_score"`
	}

	TopDonor struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Image string `json:"image,omitempty"`
	}

	TopDonorResult struct {
		Donor       *TopDonor `json:"donor"`
		TotalMeals  int64     `json:"total_meals"`
		PeriodStart string    `json:"period_start"`
		PeriodEnd   string    `json:"period_end"`
	}

	ImpactStats struct {
		TotalMeals int64 `json:"total_meals"`
		TotalAreas int64 `json:"total_areas"`
	}
)
