package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateUser   = "user created successfully"
	MessageUserAlreadyExists   = "user already exists"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessUploadAvatar = "avatar uploaded successfully"

	MessageFailedCreateUser   = "failed to create user"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedUploadAvatar = "failed to upload avatar"

	ErrUserNotFound = errors.New("user not found")
)

type (
	CreateUserRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Image string `json:"image" validate:"omitempty,url"`
	}

	UpdateUserRequest struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"omitempty"`
		Image string `json:"image" validate:"omitempty,url"`
	}

	UploadAvatarRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	User struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Image     string    `json:"image"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	CreateUserResponse struct {
		User    *User `json:"user"`
		Created bool  `json:"created"`
	}
)
