package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDerivesAuth0Endpoints(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "https://tenant.eu.auth0.com/")
	t.Setenv("AUTH0_ISSUER", "")
	t.Setenv("AUTH0_JWKS_URL", "")

	cfg := Load()

	assert.Equal(t, "tenant.eu.auth0.com", cfg.Auth.Domain)
	assert.Equal(t, "https://tenant.eu.auth0.com/", cfg.Auth.Issuer)
	assert.Equal(t, "https://tenant.eu.auth0.com/.well-known/jwks.json", cfg.Auth.JWKSURL)
}

func TestLoadIgnoresSkipAuthInProduction(t *testing.T) {
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.False(t, cfg.Auth.SkipAuth)
}

func TestLoadFeatureFlags(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("DEV_USER_ID", "7")
	t.Setenv("USE_REPOSITORY_PATTERN", "false")
	t.Setenv("CACHE_DRIVER", "redis")

	cfg := Load()

	assert.True(t, cfg.Auth.SkipAuth)
	assert.Equal(t, uint(7), cfg.Auth.DevUserId)
	assert.False(t, cfg.Features.UseRepositoryPattern)
	assert.Equal(t, "redis", cfg.Features.CacheDriver)
}
