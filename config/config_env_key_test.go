package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"places": map[string]any{
			"googleApiKey": "",
			"osm": map[string]any{
				"minInterval": "1s",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PLACES_GOOGLEAPIKEY", want: "places.googleApiKey"},
		{envKey: "PLACES_OSM_MININTERVAL", want: "places.osm.minInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "postgres", cfg.Cache.Backend)
	assert.Equal(t, time.Second, cfg.Places.OSM.MinInterval)
	assert.Equal(t, 20, cfg.Places.OSM.MaxResults)
	assert.Equal(t, 50, cfg.Spin.HistoryLimit)
	assert.Equal(t, 5, cfg.Spin.MinExtraTurns)
	assert.Equal(t, 8, cfg.Spin.MaxExtraTurns)
	assert.NotNil(t, cfg.Admin)
	assert.NotNil(t, cfg.GoogleOAuth)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Cache: &CacheConfig{Backend: "redis", TTL: time.Hour},
		Spin:  &SpinConfig{HistoryLimit: 10, MinExtraTurns: 3, MaxExtraTurns: 4},
	}
	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 10, cfg.Spin.HistoryLimit)
	assert.Equal(t, 3, cfg.Spin.MinExtraTurns)
	assert.Equal(t, 4, cfg.Spin.MaxExtraTurns)
}

func TestAdminConfig_IsAdmin(t *testing.T) {
	admins := &AdminConfig{Emails: []string{"owner@example.com", " Ops@Example.com "}}

	assert.True(t, admins.IsAdmin("owner@example.com"))
	assert.True(t, admins.IsAdmin("ops@example.com"))
	assert.False(t, admins.IsAdmin("someone@example.com"))
	assert.False(t, admins.IsAdmin(""))

	var none *AdminConfig
	assert.False(t, none.IsAdmin("owner@example.com"))
}
