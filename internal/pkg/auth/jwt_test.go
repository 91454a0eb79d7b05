package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Storefront Backend"
	cfg.JWT.Secret = "test-secret-test-secret-test-secret!"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Security.BcryptCost = 4
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateToken("admin", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig()).GenerateToken("admin", true)
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "another-secret-another-secret-another!"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTokenExpiry = -time.Minute
	token, err := NewJWTManager(cfg).GenerateToken("admin", true)
	require.NoError(t, err)

	_, err = NewJWTManager(cfg).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader(""))
	assert.Empty(t, ExtractTokenFromHeader("Bearer "))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	hash, err := manager.HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.NoError(t, manager.VerifyPassword("correct horse battery", hash))
	assert.Error(t, manager.VerifyPassword("wrong password", hash))
}

func TestHashPasswordRejectsShort(t *testing.T) {
	_, err := NewPasswordManager(testConfig()).HashPassword("short")
	assert.Error(t, err)
}
