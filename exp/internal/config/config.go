package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"SHUFFLE_DEBUG" envDefault:"false"`

	DB struct {
		Path string `env:"SHUFFLE_DB" envDefault:"./tmp/shuffle_results.db"`
	}

	Trials struct {
		DeckSize int   `env:"SHUFFLE_DECK_SIZE" envDefault:"52"`
		Count    int   `env:"SHUFFLE_TRIALS" envDefault:"1000"`
		Seed     int64 `env:"SHUFFLE_SEED" envDefault:"0"`
		Samples  int   `env:"SHUFFLE_SAMPLES" envDefault:"0"`
	}
}

// Load reads .env when present, then overlays the process environment.
// A missing .env is not an error; variables may be set directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
