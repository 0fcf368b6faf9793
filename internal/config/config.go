package config

import (
	"time"

	"caixa/internal/constants"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Viacep     ViacepConfig   `mapstructure:"viacep"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultsConfig is the policy stamped onto newly opened accounts. Amounts
// are in cents.
type DefaultsConfig struct {
	Agency            string `mapstructure:"agency"`
	WithdrawalCeiling int64  `mapstructure:"withdrawal_ceiling"`
	MaxWithdrawals    int    `mapstructure:"max_withdrawals"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output
}

type ViacepConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{
			Agency:            constants.DefaultAgency,
			WithdrawalCeiling: constants.DefaultWithdrawalCeiling,
			MaxWithdrawals:    constants.DefaultMaxWithdrawals,
		},
		Log: LogConfig{Level: "warn", Pretty: true},
		Viacep: ViacepConfig{
			BaseURL: "https://viacep.com.br",
			Timeout: 5 * time.Second,
		},
	}
}
