package config

import "time"

// defaultConfig returns the built-in defaults used when neither environment,
// flags, nor the JSON file provide a value.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "biomap",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Media: Media{
				MapsDir: "media/maps",
			},
		},
		Image: Image{
			APIBaseURL:     "https://pt.wikipedia.org/w/api.php",
			UserAgent:      "biomap/1.0 (species catalog; contact form on site)",
			RequestTimeout: 8 * time.Second,
			FallbackPath:   "static/img/no_photo.png",
			CacheTTL:       24 * time.Hour,
		},
		GeoData: GeoData{
			DatasetURL:     "https://raw.githubusercontent.com/codeforamerica/click_that_hood/master/public/data/brazil-states.geojson",
			RequestTimeout: 15 * time.Second,
		},
		Mail: Mail{
			SMTPPort: 587,
		},
		Workers: Workers{
			JanitorInterval: 6 * time.Hour,
			ArtifactMaxAge:  7 * 24 * time.Hour,
		},
	}
}
