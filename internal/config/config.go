package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	JournalPath string `env:"JOURNAL_PATH" envDefault:"dbay.db"`
	// DebugToken gates the diagnostic item lookup. Empty disables it.
	DebugToken string `env:"DEBUG_TOKEN"`
	// CallBudget is the per-call computation allowance applied when the
	// caller does not supply one.
	CallBudget int64 `env:"CALL_BUDGET" envDefault:"400000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
