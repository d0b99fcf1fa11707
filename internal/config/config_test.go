package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
app:
  name: rental-admin
  environment: development
  port: 3000
backend:
  base_url: https://backend.example.com
  timeout_seconds: 15
auth:
  sign_in_url: https://accounts.example.com/sign-in
  allowlist_enabled: false
workshops:
  stores:
    - Graz
    - Linz
`

func TestLoad(t *testing.T) {
	t.Setenv("CLERK_SECRET_KEY", "sk_test_abc")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "https://backend.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout())
	assert.Equal(t, "sk_test_abc", cfg.Auth.ClerkSecretKey)
	assert.Equal(t, []string{"Graz", "Linz"}, cfg.Workshops.Stores)
}

func TestLoadRejectsMissingBackendURL(t *testing.T) {
	_, err := Load(writeConfig(t, `
app:
  name: rental-admin
  port: 3000
workshops:
  stores: [Graz]
`))
	require.Error(t, err)
}

func TestValidateAllowlist(t *testing.T) {
	cfg := &Config{
		App:       AppConfig{Name: "rental-admin", Port: 3000},
		Backend:   BackendConfig{BaseURL: "https://backend.example.com"},
		Workshops: WorkshopsConfig{Stores: []string{"Graz"}},
	}

	cfg.Auth.AllowlistEnabled = true
	err := cfg.Validate()
	require.Error(t, err, "allowlist without emails is a misconfiguration")

	cfg.Auth.AllowedEmails = []string{"staff@example.com"}
	assert.NoError(t, cfg.Validate())

	cfg.Auth.AllowedEmails = []string{"not-an-email"}
	assert.Error(t, cfg.Validate())
}
