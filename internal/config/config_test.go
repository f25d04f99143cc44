package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_PORT", "SESSION_TTL", "QUOTE_REQUESTS_TABLE", "QUOTE_CURRENCY", "QUOTE_VALIDITY_DAYS", "TELEGRAM_TOKEN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, "quote_requests", cfg.DynamoDB.QuoteRequestsTable)
	assert.Equal(t, "AED", cfg.Quote.Currency)
	assert.Equal(t, 30, cfg.Quote.ValidityDays)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")
	t.Setenv("QUOTE_VALIDITY_DAYS", "14")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.Redis.SessionTTL)
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, 14, cfg.Quote.ValidityDays)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_RejectsInvalidValidity(t *testing.T) {
	t.Setenv("QUOTE_VALIDITY_DAYS", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadCatalog_Default(t *testing.T) {
	catalog, err := LoadCatalog(QuoteConfig{Currency: "AED"})
	require.NoError(t, err)

	p, ok := catalog.Lookup(entities.ProjectEngagement(entities.ServicePhotography), "sub_service:Event")
	require.True(t, ok)
	assert.Equal(t, 500.0, p.Amount)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
currency: USD
prices:
  - engagement: project/photography
    option: "sub_service:Event"
    kind: per_unit
    amount: 550
    unit: hour
  - engagement: retainer
    option: "addon:Content Calendar"
    kind: flat
    amount: 600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(QuoteConfig{Currency: "AED", CatalogPath: path})

	require.NoError(t, err)
	assert.Equal(t, "USD", catalog.Currency())
	p, _ := catalog.Lookup(entities.ProjectEngagement(entities.ServicePhotography), "sub_service:Event")
	assert.Equal(t, 550.0, p.Amount)
	p, ok := catalog.Lookup(entities.RetainerEngagement(), "addon:Content Calendar")
	require.True(t, ok)
	assert.Equal(t, pricing.KindFlat, p.Kind)
}

func TestLoadCatalog_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(QuoteConfig{CatalogPath: "/nonexistent/catalog.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading catalog file")
	})

	t.Run("unknown engagement", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `
prices:
  - engagement: project/knitting
    option: "sub_service:Scarf"
    kind: flat
    amount: 1
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := LoadCatalog(QuoteConfig{CatalogPath: path})
		assert.ErrorIs(t, err, pricing.ErrUnknownEngagement)
	})

	t.Run("missing option", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prices:\n  - engagement: retainer\n"), 0o644))

		_, err := LoadCatalog(QuoteConfig{CatalogPath: path})
		assert.Error(t, err)
	})
}
