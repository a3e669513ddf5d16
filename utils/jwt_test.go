package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecut/config"
	"thecut/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("evan", time.Hour)
	require.NoError(t, err)

	sub, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "evan", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("evan", -time.Hour)
	require.NoError(t, err)

	_, err = utils.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := utils.ValidateToken("not-a-token")
	assert.Error(t, err)
}
