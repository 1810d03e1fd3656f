package mailing

import (
	"ShareBite-Backend/internal/utils"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMailer_DisabledWithoutSMTP(t *testing.T) {
	m := NewMailer(&utils.Config{})
	_, ok := m.(noopMailer)
	assert.True(t, ok)
	assert.NoError(t, m.SendMail("a@x.com", "s", "b"))
}

func TestNewMailer_InvalidPort(t *testing.T) {
	m := NewMailer(&utils.Config{SMTPHost: "localhost", SMTPAuthEmail: "bot@x.com", SMTPPort: "smtp"})
	_, ok := m.(*smtpMailer)
	assert.True(t, ok)
	assert.Error(t, m.SendMail("a@x.com", "s", "b"))
}

func TestTemplatesEscape(t *testing.T) {
	subject, body := NewRequestMail("https://sharebite.app", "<Rice>", "b@x.com")
	assert.Equal(t, "New request for <Rice>", subject)
	assert.True(t, strings.Contains(body, "&lt;Rice&gt;"))
	assert.True(t, strings.Contains(body, "https://sharebite.app/dashboard"))

	subject, body = RequestDecisionMail("https://sharebite.app", "Bread", "Accepted")
	assert.Equal(t, "Your request for Bread was Accepted", subject)
	assert.True(t, strings.Contains(body, "<b>Accepted</b>"))
}
