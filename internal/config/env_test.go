package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("OWNER_ID", "777")
	t.Setenv("DB_USER", "enrollment")
	t.Setenv("DB_NAME", "enrollment")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TERMINAL_KEY_HASH", "$2a$04$notarealhashbutnotempty")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
}

func TestCheckRequiredEnvComplete(t *testing.T) {
	setAllRequiredEnv(t)

	assert.NoError(t, CheckRequiredEnv())
}

func TestCheckRequiredEnvReportsAllMissing(t *testing.T) {
	setAllRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TERMINAL_KEY_HASH", "")

	err := CheckRequiredEnv()
	require.Error(t, err)

	// Semua yang kosong dilaporkan sekaligus
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "TERMINAL_KEY_HASH")
	assert.NotContains(t, err.Error(), "OWNER_ID")
}
