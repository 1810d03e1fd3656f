package config

import (
	"ShareBite-Backend/internal/utils"
	"ShareBite-Backend/pkg/auth"
	"ShareBite-Backend/pkg/jwt"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewAuthVerifier builds the verifier named by AUTH_PROVIDER.
func NewAuthVerifier(ctx context.Context, config *utils.Config) (auth.AuthVerifier, error) {
	switch config.AuthProvider {
	case "jwt":
		if config.JWTSecret == "" {
			return nil, errors.New("AUTH_PROVIDER=jwt requires JWT_SECRET")
		}
		return jwt.NewJWTService(config.JWTSecret), nil
	case "firebase", "":
		return newFirebaseVerifier(ctx, config.FirebaseServiceKey)
	}
	return nil, fmt.Errorf("unsupported AUTH_PROVIDER %q", config.AuthProvider)
}

func newFirebaseVerifier(ctx context.Context, serviceKey string) (auth.AuthVerifier, error) {
	if serviceKey == "" {
		return nil, errors.New("AUTH_PROVIDER=firebase requires FIREBASE_SERVICE_KEY")
	}

	credentials, err := base64.StdEncoding.DecodeString(serviceKey)
	if err != nil {
		return nil, fmt.Errorf("decode FIREBASE_SERVICE_KEY: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return auth.NewFirebaseVerifier(client), nil
}
