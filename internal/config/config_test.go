package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so ambient variables cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "PROFILE_SOURCE", "DATABASE_URL", "SEED_PROFILES",
		"SESSION_STORE", "REDIS_URL", "JWT_SECRET", "BCRYPT_COST", "SESSION_EXPIRY",
		"METRO_AREA_CITIES", "LIKE_THRESHOLD", "REPLY_MIN_DELAY", "REPLY_MAX_DELAY",
		"FEED_REFRESH_SPEC", "SESSION_SWEEP_SPEC",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mock", cfg.ProfileSource)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.Equal(t, 70, cfg.LikeThreshold)
	assert.Equal(t, time.Second, cfg.ReplyMinDelay)
	assert.Equal(t, 3*time.Second, cfg.ReplyMaxDelay)
	assert.Equal(t, []string{"San Francisco", "Oakland", "Berkeley", "Palo Alto", "San Jose"}, cfg.MetroAreaCities)
	assert.True(t, cfg.SeedProfiles)
	assert.Empty(t, cfg.Warnings)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LIKE_THRESHOLD", "80")
	t.Setenv("METRO_AREA_CITIES", " Seattle , Bellevue,,Redmond ")
	t.Setenv("REPLY_MAX_DELAY", "5s")
	t.Setenv("SEED_PROFILES", "false")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 80, cfg.LikeThreshold)
	assert.Equal(t, []string{"Seattle", "Bellevue", "Redmond"}, cfg.MetroAreaCities)
	assert.Equal(t, 5*time.Second, cfg.ReplyMaxDelay)
	assert.False(t, cfg.SeedProfiles)
	assert.Equal(t, 10, cfg.BCryptCost, "unparsable ints fall back to the default")
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "BCRYPT_COST")
}

func TestLoad_ReportsUnparsableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIKE_THRESHOLD", "abc")
	t.Setenv("SEED_PROFILES", "sometimes")
	t.Setenv("REPLY_MIN_DELAY", "soon")

	cfg := Load()

	assert.Equal(t, 70, cfg.LikeThreshold)
	assert.True(t, cfg.SeedProfiles)
	assert.Equal(t, time.Second, cfg.ReplyMinDelay)
	require.Len(t, cfg.Warnings, 3)
	joined := strings.Join(cfg.Warnings, "\n")
	assert.Contains(t, joined, `LIKE_THRESHOLD="abc" is not valid, using default 70`)
	assert.Contains(t, joined, `SEED_PROFILES="sometimes"`)
	assert.Contains(t, joined, `REPLY_MIN_DELAY="soon"`)
}

func TestLoad_EmptyMetroList(t *testing.T) {
	clearEnv(t)
	t.Setenv("METRO_AREA_CITIES", ",")

	cfg := Load()

	assert.Empty(t, cfg.MetroAreaCities)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "unknown profile source",
			mutate:  func(c *Config) { c.ProfileSource = "mongo" },
			wantErr: "invalid profile source",
		},
		{
			name:    "unknown session store",
			mutate:  func(c *Config) { c.SessionStore = "localStorage" },
			wantErr: "invalid session store",
		},
		{
			name:    "default secret in production",
			mutate:  func(c *Config) { c.Environment = "production" },
			wantErr: "JWT secret must be changed",
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(c *Config) { c.BCryptCost = 2 },
			wantErr: "bcrypt cost",
		},
		{
			name:    "threshold above 100",
			mutate:  func(c *Config) { c.LikeThreshold = 101 },
			wantErr: "like threshold",
		},
		{
			name: "inverted reply delays",
			mutate: func(c *Config) {
				c.ReplyMinDelay = 3 * time.Second
				c.ReplyMaxDelay = time.Second
			},
			wantErr: "invalid reply delay range",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "postgres without url",
			mutate:  func(c *Config) { c.ProfileSource = "postgres"; c.DatabaseURL = "" },
			wantErr: "database URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
