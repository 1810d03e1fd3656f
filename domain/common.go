package domain

import (
	"errors"
)

const (
	StatusAvailable = "Available"
	StatusDonated   = "Donated"

	RequestPending  = "Pending"
	RequestAccepted = "Accepted"
	RequestRejected = "Rejected"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrInvalidBody     = errors.New("invalid request body")
	ErrMissingToken    = errors.New("no token found")
	ErrTokenInvalid    = errors.New("token verification failed")
	ErrTokenExpired    = errors.New("token expired")
	ErrForbidden       = errors.New("forbidden access")
	ErrStorageDisabled = errors.New("object storage is not configured")
	ErrInvalidImage    = errors.New("invalid image format")
)
