package internal

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config holds the one recognized option: the database connection target.
// There is no default; the importer fails fast when it is unset.
type Config struct {
	DatabaseURL string `mapstructure:"database_url"`
}

// LoadConfig resolves the connection target with multi-source priority:
//  1. The --dsn flag (flagDSN, highest)
//  2. The DATABASE_URL environment variable
//  3. database_url in .chat-import.yaml (current directory or home)
func LoadConfig(flagDSN string) (*Config, error) {
	if flagDSN != "" {
		return &Config{DatabaseURL: flagDSN}, nil
	}

	v := viper.New()
	v.SetConfigName(".chat-import")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.BindEnv("database_url", "DATABASE_URL"); err != nil {
		return nil, &ConfigError{Key: "DATABASE_URL", Err: err}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{Key: "config file", Err: err}
		}
		// No config file is fine; env can still provide the target.
	}

	// GetString rather than Unmarshal: env-bound keys are invisible to
	// Unmarshal until they appear in a config file.
	target := v.GetString("database_url")
	if target == "" {
		return nil, &ConfigError{Key: "DATABASE_URL"}
	}

	return &Config{DatabaseURL: target}, nil
}
