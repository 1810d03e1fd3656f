package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRequests     = "requests retrieved successfully"
	MessageSuccessAddRequest      = "request submitted successfully"
	MessageSuccessDeleteRequest   = "request deleted successfully"
	MessageSuccessAcceptRequest   = "request accepted successfully"
	MessageSuccessRejectRequest   = "request rejected successfully"
	MessageSuccessGetRequestStats = "request statistics retrieved successfully"

	MessageFailedGetRequests     = "failed to retrieve requests"
	MessageFailedAddRequest      = "failed to submit request"
	MessageFailedDeleteRequest   = "failed to delete request"
	MessageFailedAcceptRequest   = "failed to accept request"
	MessageFailedRejectRequest   = "failed to reject request"
	MessageFailedGetRequestStats = "failed to retrieve request statistics"

	ErrRequestNotFound   = errors.New("request not found")
	ErrRequestNotPending = errors.New("request is no longer pending")
)

const (
	LatestRequestsLimit = 5
)

type (
	AddRequestRequest struct {
		FoodID         string `json:"food_id" validate:"required"`
		RequestorEmail string `json:"requestor_email" validate:"required,email"`
		RequestorName  string `json:"requestor_name" validate:"omitempty"`
		Notes          string `json:"notes" validate:"omitempty,max=1000"`
	}

	Request struct {
		ID             string    `json:"id"`
		FoodID         string    `json:"food_id"`
		FoodName       string    `json:"food_name"`
		DonatorEmail   string    `json:"donator_email"`
		RequestorEmail string    `json:"requestor_email"`
		RequestorName  string    `json:"requestor_name"`
		Notes          string    `json:"notes,omitempty"`
		Status         string    `json:"status"`
		DonationDate   string    `json:"donation_date"`
		DonationTime   string    `json:"donation_time"`
		CreatedAt      time.Time `json:"created_at"`
	}

	// RequestStatusCounts maps a request status to the number of requests in it.
	// Statuses with no requests are absent.
	RequestStatusCounts map[string]int64
)
