package config

import "time"

// Alerts configures the optional purchase-notification poller. Disabled
// unless a URL is set.
type Alerts struct {
	URL       string        `env:"ALERTS_URL"`
	Token     string        `env:"ALERTS_TOKEN" json:"-"`
	Interval  time.Duration `env:"ALERTS_INTERVAL" envDefault:"1m"`
	StatePath string        `env:"ALERTS_STATE_PATH" envDefault:"data/alerts_seen.json"`
}

func (a Alerts) Enabled() bool {
	return a.URL != ""
}
