package jwt

import (
	"ShareBite-Backend/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService verifies HS256 bearer tokens that carry the caller's email.
	// It satisfies auth.AuthVerifier for deployments without Firebase.
	JWTService interface {
		GenerateTokenUser(email string, name string, duration time.Duration) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetEmailByToken(token string) (string, error)
		VerifyToken(ctx context.Context, token string) (string, error)
	}

	jwtUserClaim struct {
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

const Issuer = "SHAREBITE"

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    Issuer,
	}
}

func (j *jwtService) GenerateTokenUser(email string, name string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwtUserClaim{
		email,
		name,
		jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetEmailByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if claims.Issuer != j.issuer || claims.Email == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Email, nil
}

func (j *jwtService) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrMissingToken
	}
	return j.GetEmailByToken(token)
}
