package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FLIGHT_SOURCE", "")
	t.Setenv("MIN_TURNAROUND", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SourceCSV, cfg.FlightSource)
	assert.Equal(t, 2*time.Hour, cfg.MinTurnaround)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("FLIGHT_SOURCE", SourceMongo)
	t.Setenv("MIN_TURNAROUND", "45m")
	t.Setenv("READ_TIMEOUT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SourceMongo, cfg.FlightSource)
	assert.Equal(t, 45*time.Minute, cfg.MinTurnaround)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("FLIGHT_SOURCE", "ftp")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("FLIGHT_SOURCE", "")
		t.Setenv("MIN_TURNAROUND", "two hours")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "MIN_TURNAROUND")
	})
}
