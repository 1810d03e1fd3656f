package user

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/entities"
	"ShareBite-Backend/internal/utils/storage"
	"ShareBite-Backend/pkg/auth"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.CreateUserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, verifiedEmail string) (*domain.User, error)
		UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, verifiedEmail string) (*domain.User, error)
	}

	userService struct {
		userRepository UserRepository
		s3             storage.AwsS3
		log            logrus.FieldLogger
	}
)

func NewUserService(userRepository UserRepository, s3 storage.AwsS3, log logrus.FieldLogger) UserService {
	return &userService{
		userRepository: userRepository,
		s3:             s3,
		log:            log.WithField("component", "user"),
	}
}

// CreateUser is idempotent on email: a second call returns the stored record
// untouched.
func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.CreateUserResponse, error) {
	u := &entities.User{
		Email: strings.TrimSpace(req.Email),
		Name:  req.Name,
		Image: req.Image,
	}

	created, err := s.userRepository.CreateUserIfNotExists(ctx, u)
	if err != nil {
		return nil, err
	}

	if !created {
		existing, err := s.userRepository.GetUserByEmail(ctx, u.Email)
		if err != nil {
			return nil, err
		}
		return &domain.CreateUserResponse{User: toDomainUser(existing), Created: false}, nil
	}

	s.log.WithField("email", u.Email).Info("user created")
	return &domain.CreateUserResponse{User: toDomainUser(u), Created: true}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, verifiedEmail string) (*domain.User, error) {
	if err := auth.RequireSelf(verifiedEmail, req.Email); err != nil {
		return nil, err
	}

	var name, image *string
	if req.Name != "" {
		name = &req.Name
	}
	if req.Image != "" {
		image = &req.Image
	}

	return s.updateProfile(ctx, req.Email, name, image)
}

func (s *userService) UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, verifiedEmail string) (*domain.User, error) {
	existing, err := s.userRepository.GetUserByEmail(ctx, verifiedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		ctx,
		fmt.Sprintf("avatar-%s", existing.ID.String()),
		req.Image,
		"avatars",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	return s.updateProfile(ctx, existing.Email, nil, &imageURL)
}

func (s *userService) updateProfile(ctx context.Context, email string, name, image *string) (*domain.User, error) {
	affected, err := s.userRepository.UpdateUserProfile(ctx, email, name, image)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrUserNotFound
	}

	updated, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDomainUser(updated), nil
}

func toDomainUser(u *entities.User) *domain.User {
	return &domain.User{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
