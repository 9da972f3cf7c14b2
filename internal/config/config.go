package config

import "github.com/hance08/tally/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Report     ReportConfig   `mapstructure:"report"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ReportConfig struct {
	// Currencies are always listed in the balance summary, 0 when unseen.
	Currencies []string `mapstructure:"currencies"`
}

type LedgerConfig struct {
	// Rounding adds or overrides per-currency rules on top of the defaults.
	// A list rather than a map, viper lowercases map keys.
	Rounding      []RoundingConfig `mapstructure:"rounding"`
	PrefetchLimit int              `mapstructure:"prefetch_limit"`
}

type RoundingConfig struct {
	Currency string `mapstructure:"currency"`
	Places   int32  `mapstructure:"places"`
	Mode     string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// Console switches between human readable output and JSON lines.
	Console bool `mapstructure:"console"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Report: ReportConfig{
			Currencies: append([]string(nil), constants.KnownCurrencies...),
		},
		Ledger: LedgerConfig{PrefetchLimit: 8},
		Log:    LogConfig{Level: "warn", Console: true},
	}
}
