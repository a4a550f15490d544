package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	DatasetSource   string        `mapstructure:"DATASET_SOURCE"`
	DatasetWatch    bool          `mapstructure:"DATASET_WATCH"`
	HTTPTimeout     time.Duration `mapstructure:"HTTP_TIMEOUT"`
	DefaultLimit    int           `mapstructure:"DEFAULT_LIMIT"`
	MaxLimit        int           `mapstructure:"MAX_LIMIT"`
	AddressCutoff   float64       `mapstructure:"ADDRESS_CUTOFF"`
	LocationCutoff  float64       `mapstructure:"LOCATION_CUTOFF"`
	AdminToken      string        `mapstructure:"ADMIN_TOKEN"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":   "0.0.0.0:5000",
	"GIN_MODE":         "release",
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "json",
	"DATASET_SOURCE":   "nz_streets.csv",
	"DATASET_WATCH":    false,
	"HTTP_TIMEOUT":     "30s",
	"DEFAULT_LIMIT":    3,
	"MAX_LIMIT":        50,
	"ADDRESS_CUTOFF":   75.0,
	"LOCATION_CUTOFF":  50.0,
	"ADMIN_TOKEN":      "",
	"SHUTDOWN_TIMEOUT": "10s",
}

// LoadConfig reads app.env from path, overridden by environment variables. A .env file in the
// working directory is loaded into the environment first when present. A missing app.env is
// not an error; the defaults apply.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, config.validate()
}

func (c Config) validate() error {
	switch {
	case c.DefaultLimit < 0:
		return fmt.Errorf("config: DEFAULT_LIMIT must not be negative, got %d", c.DefaultLimit)
	case c.MaxLimit < c.DefaultLimit:
		return fmt.Errorf("config: MAX_LIMIT %d is below DEFAULT_LIMIT %d", c.MaxLimit, c.DefaultLimit)
	case c.AddressCutoff < 0 || c.AddressCutoff > 100:
		return fmt.Errorf("config: ADDRESS_CUTOFF must be within 0-100, got %v", c.AddressCutoff)
	case c.LocationCutoff < 0 || c.LocationCutoff > 100:
		return fmt.Errorf("config: LOCATION_CUTOFF must be within 0-100, got %v", c.LocationCutoff)
	}
	return nil
}
