package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"marketplace": map[string]any{
			"baseUrl": "http://localhost:9000",
			"timeout": "15s",
		},
		"dashboard": map[string]any{
			"fanOutLimit": 4,
		},
		"session": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MARKETPLACE_BASEURL", want: "marketplace.baseUrl"},
		{envKey: "MARKETPLACE_TIMEOUT", want: "marketplace.timeout"},
		{envKey: "DASHBOARD_FANOUTLIMIT", want: "dashboard.fanOutLimit"},
		{envKey: "SESSION_SECRET", want: "session.secret"},
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

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultMarketplaceTimeout, cfg.Marketplace.Timeout)
	assert.Equal(t, defaultFanOutLimit, cfg.Dashboard.FanOutLimit)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Session:     &SessionConfig{Secret: "s", TTL: time.Hour},
		Marketplace: &MarketplaceConfig{BaseURL: "http://upstream", Timeout: time.Second},
		Dashboard:   &DashboardConfig{FanOutLimit: 9},
	}
	cfg.HTTP.Port = 9090

	applyDefaults(cfg)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Second, cfg.Marketplace.Timeout)
	assert.Equal(t, 9, cfg.Dashboard.FanOutLimit)
}
