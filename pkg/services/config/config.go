package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the application configuration file, YAML on disk.
type Config struct {
	Addr        string `mapstructure:"addr"`
	DbPath      string `mapstructure:"db_path"`
	DatasetPath string `mapstructure:"dataset_path"`
	JWTSecret   string `mapstructure:"jwt_secret"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("db_path", "churn-atlas.db")
	v.SetDefault("dataset_path", "data/Telco-Customer-Churn.csv")
}

// LoadConfig reads the config file at path; JWT_SECRET from the environment
// overrides the file value so secrets can stay out of it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	defaults(v)
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required (config file or JWT_SECRET env)")
	}
	return &cfg, nil
}
