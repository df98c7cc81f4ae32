package configs

import (
	"net/url"
	"time"
)

// Platform configures the Graph API client.
type Platform struct {
	AccessToken string  `env:"ACCESS_TOKEN"`
	BaseURL     url.URL `env:"BASE_URL" envDefault:"https://graph.facebook.com/v17.0"`
	// RateLimit is the sustained number of requests per second.
	RateLimit float64       `env:"RATE_LIMIT" envDefault:"5"`
	Burst     int           `env:"BURST" envDefault:"5"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
	PageSize  int           `env:"PAGE_SIZE" envDefault:"100"`
	// Concurrency bounds the number of accounts fetched at once.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
}
