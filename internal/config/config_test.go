package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 9, cfg.ReelsLimit)
	assert.Equal(t, 50, cfg.ImageLimit)
	assert.False(t, cfg.CapacitySweep)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REELS_LIMIT", "4")
	t.Setenv("PORTFOLIO_IMAGE_LIMIT", "100")
	t.Setenv("CAPACITY_SWEEP", "true")
	t.Setenv("FIREBASE_PROJECT_ID", "glam-studio")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 4, cfg.ReelsLimit)
	assert.Equal(t, 100, cfg.ImageLimit)
	assert.True(t, cfg.CapacitySweep)
	assert.Equal(t, "glam-studio", cfg.FirebaseProjectID)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("REELS_LIMIT", "lots")

	cfg := Load()
	assert.Equal(t, 9, cfg.ReelsLimit)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, getEnvBool("FLAG", false))

	t.Setenv("FLAG", "0")
	assert.False(t, getEnvBool("FLAG", true))

	t.Setenv("FLAG", "")
	assert.True(t, getEnvBool("FLAG", true))
}
