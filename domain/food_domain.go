package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetFoods      = "foods retrieved successfully"
	MessageSuccessGetFood       = "food retrieved successfully"
	MessageSuccessAddFood       = "food added successfully"
	MessageSuccessUpdateFood    = "food updated successfully"
	MessageSuccessDeleteFood    = "food deleted successfully"
	MessageSuccessGetFoodStats  = "food statistics retrieved successfully"
	MessageSuccessUploadImage   = "image uploaded successfully"
	MessageSuccessGetMyScore    = "score retrieved successfully"
	MessageSuccessGetFoodCharts = "chart data retrieved successfully"

	MessageFailedGetFoods      = "failed to retrieve foods"
	MessageFailedGetFood       = "failed to retrieve food"
	MessageFailedAddFood       = "failed to add food"
	MessageFailedUpdateFood    = "failed to update food"
	MessageFailedDeleteFood    = "failed to delete food"
	MessageFailedGetFoodStats  = "failed to retrieve food statistics"
	MessageFailedUploadImage   = "failed to upload image"
	MessageFailedGetMyScore    = "failed to retrieve score"
	MessageFailedGetFoodCharts = "failed to retrieve chart data"

	ErrFoodNotFound = errors.New("food not found")
)

const (
	TopFoodsByQuantityLimit = 8
	AvailableFoodsLimit     = 8
	MyChartLimit            = 6
)

type (
	DonatorRequest struct {
		Name  string `json:"name" validate:"required"`
		Image string `json:"image" validate:"omitempty,url"`
	}

	AddFoodRequest struct {
		Name           string         `json:"name" validate:"required"`
		Image          string         `json:"image" validate:"omitempty,url"`
		Quantity       int            `json:"quantity" validate:"min=0"`
		PickupLocation string         `json:"pickup_location" validate:"required"`
		ExpiredAt      *time.Time     `json:"expired_at" validate:"omitempty"`
		Notes          string         `json:"notes" validate:"omitempty,max=1000"`
		Donator        DonatorRequest `json:"donator" validate:"required"`
	}

	UpdateFoodRequest struct {
		Name           string     `json:"name" validate:"omitempty"`
		Image          string     `json:"image" validate:"omitempty,url"`
		Quantity       *int       `json:"quantity" validate:"omitempty,min=0"`
		PickupLocation string     `json:"pickup_location" validate:"omitempty"`
		ExpiredAt      *time.Time `json:"expired_at" validate:"omitempty"`
		Notes          *string    `json:"notes" validate:"omitempty,max=1000"`
	}

	AvailableFoodsQuery struct {
		Search string
		Limit  int
		Skip   int
	}

	UploadFoodImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	Donator struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Image string `json:"image,omitempty"`
	}

	RequestStats struct {
		Pending  int `json:"pending"`
		Accepted int `json:"accepted"`
		Rejected int `json:"rejected"`
	}

	Food struct {
		ID             string       `json:"id"`
		Name           string       `json:"name"`
		Image          string       `json:"image,omitempty"`
		Quantity       int          `json:"quantity"`
		Status         string       `json:"status"`
		PickupLocation string       `json:"pickup_location"`
		ExpiredAt      *time.Time   `json:"expired_at,omitempty"`
		Notes          string       `json:"notes,omitempty"`
		Donator        Donator      `json:"donator"`
		DonationDate   string       `json:"donation_date"`
		DonationTime   string       `json:"donation_time"`
		RequestStats   RequestStats `json:"request_stats"`
		CreatedAt      time.Time    `json:"created_at"`
		UpdatedAt      time.Time    `json:"updated_at"`
	}

	AvailableFoods struct {
		Foods []*Food `json:"foods"`
		Total int64   `json:"total"`
	}

	FoodStats struct {
		TotalDonations int64 `json:"total_donations"`
		TotalServings  int64 `json:"total_servings"`
	}

	UploadImageResponse struct {
		URL string `json:"url"`
	}
)
