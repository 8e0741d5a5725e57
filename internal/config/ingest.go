package config

import "time"

type Ingest struct {
	FeedBaseURL     string        `env:"FEED_BASE_URL,notEmpty"`
	FeedBearerToken string        `env:"FEED_BEARER_TOKEN" json:"-"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"6h"`
	FingerprintTTL  time.Duration `env:"FINGERPRINT_TTL" envDefault:"168h"`
	StatusCacheTTL  time.Duration `env:"STATUS_CACHE_TTL" envDefault:"30s"`
}
