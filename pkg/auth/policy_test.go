package auth

import (
	"ShareBite-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireSelf(t *testing.T) {
	tests := []struct {
		name     string
		verified string
		target   string
		wantErr  error
	}{
		{name: "same email", verified: "a@x.com", target: "a@x.com"},
		{name: "different case", verified: "A@X.com", target: "a@x.com", wantErr: domain.ErrForbidden},
		{name: "surrounding spaces", verified: " a@x.com", target: "a@x.com "},
		{name: "other user", verified: "a@x.com", target: "b@x.com", wantErr: domain.ErrForbidden},
		{name: "missing target", verified: "a@x.com", target: "", wantErr: domain.ErrForbidden},
		{name: "missing identity", verified: "", target: "a@x.com", wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSelf(tt.verified, tt.target)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
