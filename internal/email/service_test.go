package email

import (
	"testing"

	"github.com/bitvara/backoffice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	svc, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	for _, name := range []string{"welcome", "invite"} {
		tmpl, ok := svc.Templates[name]
		require.True(t, ok, "template group %s", name)
		assert.NotNil(t, tmpl.HTML)
		assert.NotNil(t, tmpl.Plaintext)
	}
}

func TestRenderTemplate(t *testing.T) {
	svc, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	t.Run("welcome renders name and link", func(t *testing.T) {
		html, text, err := svc.renderTemplate("welcome", map[string]string{
			"Name":      "Jo",
			"LoginLink": "https://app.example.com/login",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Jo")
		assert.Contains(t, html, "https://app.example.com/login")
		assert.Contains(t, text, "Jo")
	})

	t.Run("invite includes the temporary password when set", func(t *testing.T) {
		html, _, err := svc.renderTemplate("invite", map[string]string{
			"Name":              "Jo",
			"OrganizationName":  "Acme",
			"Role":              "staff",
			"TemporaryPassword": "s3cret-temp",
			"LoginLink":         "https://app.example.com/login",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Acme")
		assert.Contains(t, html, "s3cret-temp")
	})

	t.Run("invite omits the password block for existing accounts", func(t *testing.T) {
		html, _, err := svc.renderTemplate("invite", map[string]string{
			"Name":             "Jo",
			"OrganizationName": "Acme",
			"Role":             "staff",
			"LoginLink":        "https://app.example.com/login",
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "temporary password")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, err := svc.renderTemplate("nonexistent", nil)
		assert.Error(t, err)
	})
}
