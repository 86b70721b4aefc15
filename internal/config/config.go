package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Leech    LeechConfig    `mapstructure:"leech"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
	ConnectRetries  uint              `mapstructure:"connect_retries"`
}

type ServerConfig struct {
	Port                   int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                   CORSConfig `mapstructure:"cors"`
	TLS                    TLSConfig  `mapstructure:"tls"`
	ShutdownTimeoutSeconds int        `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TLSConfig struct {
	CertFile string `mapstructure:"cert_file" validate:"omitempty,file"`
	KeyFile  string `mapstructure:"key_file" validate:"required_with=CertFile,omitempty,file"`
}

// QueueConfig holds the initial selection settings of the reading queue.
type QueueConfig struct {
	Randomness float64 `mapstructure:"randomness" validate:"min=0,max=1"`
}

// LeechConfig mirrors srs.LeechConfig so it can be set from the config file.
type LeechConfig struct {
	Threshold        int     `mapstructure:"threshold" validate:"min=1"`
	RecentWindow     int     `mapstructure:"recent_window" validate:"min=1"`
	MaxFailRatio     float64 `mapstructure:"max_fail_ratio" validate:"gt=0,lte=1"`
	ConsecutiveFails int     `mapstructure:"consecutive_fails" validate:"min=1"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *Validator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := NewValidator("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/increader")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "increader.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "increader")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_retries", 3)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("queue.randomness", 0.0)
	v.SetDefault("leech.threshold", 5)
	v.SetDefault("leech.recent_window", 10)
	v.SetDefault("leech.max_fail_ratio", 0.4)
	v.SetDefault("leech.consecutive_fails", 3)

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("database.driver", "INCREADER_DB_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind INCREADER_DB_DRIVER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
