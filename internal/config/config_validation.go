package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Image.APIBaseURL == "" || cfg.Image.FallbackPath == "" || cfg.Image.CacheTTL == 0 {
		return ErrInvalidImageConfigs
	}

	if cfg.GeoData.DatasetURL == "" {
		return ErrInvalidGeoDataConfigs
	}

	return nil
}
