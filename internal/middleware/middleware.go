package middleware

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/api/presenters"
	"ShareBite-Backend/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// TokenEmailKey is the fiber local holding the verified caller email.
const TokenEmailKey = "token_email"

type (
	Middleware interface {
		AuthMiddleware(verifier auth.AuthVerifier) fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) AuthMiddleware(verifier auth.AuthVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		email, err := verifier.VerifyToken(c.Context(), token)
		if err != nil {
			if !auth.IsAuthenticationFailure(err) {
				err = domain.ErrTokenInvalid
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals(TokenEmailKey, email)
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// TokenEmail returns the email stored by AuthMiddleware, or "" on routes
// without it.
func TokenEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(TokenEmailKey).(string)
	return email
}
