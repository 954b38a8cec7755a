package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config.yml in this directory, so defaults apply
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(50), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.Equal(t, 2*time.Second, cfg.Notifier.HospitalContactDelay)
	assert.Equal(t, 4*time.Second, cfg.Notifier.DonorNotifyDelay)
	assert.True(t, cfg.Seed.Demo)
}
