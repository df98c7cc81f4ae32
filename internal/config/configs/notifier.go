package configs

import "time"

// Notifier configures report delivery. Without a webhook URL reports are
// written to the log.
type Notifier struct {
	WebhookURL string        `env:"WEBHOOK_URL"`
	Channel    string        `env:"CHANNEL"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
