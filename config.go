package quantum

import "time"

// Config carries the knobs shared by the estimators and the simulator
// backend. A zero Seed means seed from the clock.
type Config struct {
	OracleTimeout time.Duration
	Seed          int64
}

func NewConfig() *Config {
	return &Config{
		OracleTimeout: 10 * time.Second,
	}
}
