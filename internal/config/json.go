package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Media struct {
			MapsDir string `json:"maps_dir"`
		} `json:"media,omitempty"`
	} `json:"storage,omitempty"`

	Image struct {
		APIBaseURL     string   `json:"api_base_url"`
		UserAgent      string   `json:"user_agent"`
		RequestTimeout Duration `json:"request_timeout"`
		FallbackPath   string   `json:"fallback_path"`
		CacheTTL       Duration `json:"cache_ttl"`
	} `json:"image,omitempty"`

	GeoData struct {
		DatasetURL     string   `json:"dataset_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"geodata,omitempty"`

	Mail struct {
		SMTPHost        string `json:"smtp_host"`
		SMTPPort        int    `json:"smtp_port"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		From            string `json:"from"`
		OperatorAddress string `json:"operator_address"`
	} `json:"mail,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
		ArtifactMaxAge  Duration `json:"artifact_max_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Media: Media{
				MapsDir: jsonCfg.Storage.Media.MapsDir,
			},
		},
		Image: Image{
			APIBaseURL:     jsonCfg.Image.APIBaseURL,
			UserAgent:      jsonCfg.Image.UserAgent,
			RequestTimeout: time.Duration(jsonCfg.Image.RequestTimeout),
			FallbackPath:   jsonCfg.Image.FallbackPath,
			CacheTTL:       time.Duration(jsonCfg.Image.CacheTTL),
		},
		GeoData: GeoData{
			DatasetURL:     jsonCfg.GeoData.DatasetURL,
			RequestTimeout: time.Duration(jsonCfg.GeoData.RequestTimeout),
		},
		Mail: Mail{
			SMTPHost:        jsonCfg.Mail.SMTPHost,
			SMTPPort:        jsonCfg.Mail.SMTPPort,
			Username:        jsonCfg.Mail.Username,
			Password:        jsonCfg.Mail.Password,
			From:            jsonCfg.Mail.From,
			OperatorAddress: jsonCfg.Mail.OperatorAddress,
		},
		Workers: Workers{
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
			ArtifactMaxAge:  time.Duration(jsonCfg.Workers.ArtifactMaxAge),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" as well as raw nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}
