// Package auth resolves bearer credentials to a verified identity and holds
// the authorization policy shared by every identity-scoped operation.
package auth

import (
	"ShareBite-Backend/domain"
	"context"
	"errors"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
)

type (
	// AuthVerifier turns a raw bearer credential into the caller's email.
	AuthVerifier interface {
		VerifyToken(ctx context.Context, token string) (string, error)
	}

	firebaseTokenVerifier interface {
		VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
	}

	firebaseVerifier struct {
		client firebaseTokenVerifier
	}
)

func NewFirebaseVerifier(client *firebaseauth.Client) AuthVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrMissingToken
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		if firebaseauth.IsIDTokenExpired(err) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", domain.ErrTokenInvalid
	}
	return email, nil
}

// BearerToken extracts the credential from an Authorization header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrMissingToken
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domain.ErrMissingToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrMissingToken
	}
	return token, nil
}

// IsAuthenticationFailure reports whether err means the credential itself was
// missing or rejected.
func IsAuthenticationFailure(err error) bool {
	return errors.Is(err, domain.ErrMissingToken) ||
		errors.Is(err, domain.ErrTokenInvalid) ||
		errors.Is(err, domain.ErrTokenExpired)
}
