package auth

import (
	"ShareBite-Backend/domain"
	"strings"
)

// RequireSelf allows an operation only when the verified identity is the
// target identity. Emails must match exactly.
func RequireSelf(verifiedEmail, targetEmail string) error {
	verified := strings.TrimSpace(verifiedEmail)
	target := strings.TrimSpace(targetEmail)
	if verified == "" || target == "" {
		return domain.ErrForbidden
	}
	if verified != target {
		return domain.ErrForbidden
	}
	return nil
}
