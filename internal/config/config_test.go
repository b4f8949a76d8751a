package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a configuration passing validate(); tests mutate single
// fields to probe individual invariants.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost:5432/biomap"
	cfg.App.TokenSignKey = "sign-key"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"missing dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"missing sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing issuer", func(c *StructuredConfig) { c.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(c *StructuredConfig) { c.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"missing http address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"missing image api", func(c *StructuredConfig) { c.Image.APIBaseURL = "" }, ErrInvalidImageConfigs},
		{"missing geodata url", func(c *StructuredConfig) { c.GeoData.DatasetURL = "" }, ErrInvalidGeoDataConfigs},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.mutate(cfg)

			err := cfg.validate()
			if test.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.wantErr)
			}
		})
	}
}

func TestConfigBuilder_LayerPrecedence(t *testing.T) {
	// The earlier layer wins: mergo only fills zero-valued fields.
	override := validConfig()
	override.Server.HTTPAddress = "localhost:9999"

	builder := newConfigBuilder()
	builder.configs = append(builder.configs, override)
	builder = builder.withDefaults()

	cfg, err := builder.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	// Untouched fields still come from the defaults layer.
	assert.Equal(t, defaultConfig().Image.CacheTTL, cfg.Image.CacheTTL)
}

func TestConfigBuilder_DefaultsAloneFailValidation(t *testing.T) {
	// Defaults carry no DSN or sign key, so a bare build must not pass.
	_, err := newConfigBuilder().withDefaults().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {
			"token_sign_key": "json-key",
			"token_duration": "2h"
		},
		"server": {
			"http_address": "localhost:8081",
			"request_timeout": "30s"
		},
		"image": {
			"cache_ttl": 60000000000
		}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	// raw nanoseconds are accepted too
	assert.Equal(t, time.Minute, cfg.Image.CacheTTL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"90s"`, 90 * time.Second, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage string", `"ninety"`, 0, true},
		{"wrong type", `true`, 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(test.in), &d)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, time.Duration(d))
		})
	}
}
