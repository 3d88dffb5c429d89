package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("LOTTO_TEST_KEY", "value")

	assert.Equal(t, "value", getEnv("LOTTO_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("LOTTO_TEST_MISSING", "fallback"))
}

func TestGetCacheTTL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"valid minutes", "10", 10 * time.Minute},
		{"empty falls back", "", 5 * time.Minute},
		{"garbage falls back", "soon", 5 * time.Minute},
		{"non-positive falls back", "0", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CacheTTLMinutes: tt.value}
			assert.Equal(t, tt.want, cfg.GetCacheTTL())
		})
	}
}

func TestGetRateLimitPerMinute(t *testing.T) {
	assert.Equal(t, 60, (&Config{RateLimitPerMinute: "60"}).GetRateLimitPerMinute())
	assert.Equal(t, 120, (&Config{RateLimitPerMinute: "lots"}).GetRateLimitPerMinute())
	assert.Equal(t, 120, (&Config{}).GetRateLimitPerMinute())
}

func TestGetForceShowGrace(t *testing.T) {
	assert.Equal(t, time.Duration(0), (&Config{}).GetForceShowGrace())
	assert.Equal(t, 15*time.Minute, (&Config{ForceShowGraceMinute: "15"}).GetForceShowGrace())
	assert.Equal(t, time.Duration(0), (&Config{ForceShowGraceMinute: "-5"}).GetForceShowGrace())
}

func TestDefaultDrawConfig(t *testing.T) {
	cfg := DefaultDrawConfig()

	assert.Equal(t, "Europe/Dublin", cfg.Timezone)
	assert.Equal(t, 20, cfg.DrawHour)
	assert.Equal(t, 6, cfg.NumberCount)
	assert.Equal(t, 47, cfg.NumberMax)
}
