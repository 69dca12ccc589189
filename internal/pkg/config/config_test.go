package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "12.5")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("TEST_BAD_INT", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("TEST_MISSING", false))
	assert.Equal(t, 12.5, GetEnvAsFloat("TEST_FLOAT", 0))
	assert.Equal(t, 3.0, GetEnvAsFloat("TEST_MISSING", 3.0))
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, 50.0, cfg.Pricing.BaseFare)
	assert.Equal(t, 15.0, cfg.Pricing.PerKmRate)
	assert.Equal(t, 10.0, cfg.Pricing.CommissionPercent)
	assert.Equal(t, 10.0, cfg.Dispatch.RadiusKm)
	assert.False(t, cfg.Rides.AcceptClientFare)
	assert.Equal(t, "nats", cfg.Events.Broker)
	assert.Equal(t, uint(5), cfg.Events.GeohashPrecision)
	assert.Equal(t, 2, cfg.Events.PublishRetries)
	assert.Equal(t, 5, cfg.Events.BreakerFailures)
	assert.Equal(t, 30, cfg.Events.BreakerCooldown)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PRICING_BASE_FARE", "30")
	t.Setenv("PRICING_PER_KM_RATE", "12.5")
	t.Setenv("PRICING_COMMISSION_PERCENT", "20")
	t.Setenv("DISPATCH_RADIUS_KM", "5")
	t.Setenv("RIDES_ACCEPT_CLIENT_FARE", "true")
	t.Setenv("EVENTS_BROKER", "nsq")

	cfg := loadConfigFromEnv()

	assert.Equal(t, 30.0, cfg.Pricing.BaseFare)
	assert.Equal(t, 12.5, cfg.Pricing.PerKmRate)
	assert.Equal(t, 20.0, cfg.Pricing.CommissionPercent)
	assert.Equal(t, 5.0, cfg.Dispatch.RadiusKm)
	assert.True(t, cfg.Rides.AcceptClientFare)
	assert.Equal(t, "nsq", cfg.Events.Broker)
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rides.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=rides-from-file\nSERVER_PORT=9100\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that already exist, so clear them for the test
	t.Setenv("APP_NAME", "")
	t.Setenv("SERVER_PORT", "")
	os.Unsetenv("APP_NAME")
	os.Unsetenv("SERVER_PORT")

	cfg := InitConfig(path)

	assert.Equal(t, "rides-from-file", cfg.App.Name)
	assert.Equal(t, 9100, cfg.Server.Port)
}
