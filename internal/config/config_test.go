package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "DIALOGUE_IDLE_TIMEOUT", "NEARBY_RADIUS_KM", "BOT_WORKERS", "JWT_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.False(t, cfg.BotEnabled())
	assert.Equal(t, time.Hour, cfg.Dialogue.IdleTimeout)
	assert.Equal(t, 2.0, cfg.Dialogue.RadiusKm)
	assert.Equal(t, 5*time.Second, cfg.Dialogue.QueryTimeout)
	assert.Equal(t, 5, cfg.Dialogue.TopLimit)
	assert.Equal(t, 8, cfg.Bot.Workers)
	assert.Equal(t, time.Hour, cfg.Auth.JwtTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DIALOGUE_IDLE_TIMEOUT", "30m")
	t.Setenv("NEARBY_RADIUS_KM", "3.5")
	t.Setenv("BOT_WORKERS", "16")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.True(t, cfg.BotEnabled())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Minute, cfg.Dialogue.IdleTimeout)
	assert.Equal(t, 3.5, cfg.Dialogue.RadiusKm)
	assert.Equal(t, 16, cfg.Bot.Workers)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getEnvAsDuration("SOME_TIMEOUT", time.Minute))

	t.Setenv("SOME_TIMEOUT", "-5s")
	assert.Equal(t, time.Minute, getEnvAsDuration("SOME_TIMEOUT", time.Minute))
}
