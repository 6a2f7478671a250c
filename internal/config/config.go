// Package config loads collectdesk settings: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig is a Postgres connection.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
	MaxIdle  int    `yaml:"max_idle"`
}

// DSN renders the lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig is a Redis connection.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// MQTTConfig is the notification broker. An empty Broker disables it.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// Record source kinds.
const (
	SourceFixtures = "fixtures"
	SourcePostgres = "postgres"
	SourceRemote   = "remote"
)

// Preference backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the full collectdesk configuration.
type Config struct {
	Source struct {
		Kind string `yaml:"kind"`
	} `yaml:"source"`

	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`

	Remote struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		RetryCount     int    `yaml:"retry_count"`
		PageSize       int    `yaml:"page_size"`
	} `yaml:"remote"`

	Preferences struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
		Prefix  string `yaml:"prefix"`
	} `yaml:"preferences"`

	Notifications struct {
		DefaultDurationMS int        `yaml:"default_duration_ms"`
		MQTT              MQTTConfig `yaml:"mqtt"`
	} `yaml:"notifications"`

	Watch struct {
		IntervalSeconds int    `yaml:"interval_seconds"`
		MetricsAddr     string `yaml:"metrics_addr"`
	} `yaml:"watch"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{}
	cfg.Source.Kind = SourceFixtures

	cfg.Database = DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Database: "collectdesk",
		SSLMode:  "disable",
		MaxConns: 10,
		MaxIdle:  2,
	}
	cfg.Redis = RedisConfig{Addr: "localhost:6379"}

	cfg.Remote.BaseURL = "http://localhost:8000/api"
	cfg.Remote.TimeoutSeconds = 10
	cfg.Remote.RetryCount = 3
	cfg.Remote.PageSize = 100

	cfg.Preferences.Backend = BackendFile
	cfg.Preferences.Path = defaultPrefsPath()
	cfg.Preferences.Prefix = "collectdesk:"

	cfg.Notifications.DefaultDurationMS = 5000
	cfg.Notifications.MQTT.ClientID = "collectdesk"
	cfg.Notifications.MQTT.Topic = "collectdesk/notifications"
	cfg.Notifications.MQTT.QoS = 1

	cfg.Watch.IntervalSeconds = 30
	cfg.Watch.MetricsAddr = ":9090"

	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "collectdesk-preferences.json"
	}
	return dir + "/collectdesk/preferences.json"
}

// Load builds the configuration. When path is non-empty the YAML file is
// applied over the defaults; environment variables win over both.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Source.Kind = getEnv("DATA_SOURCE", cfg.Source.Kind)

	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Database = getEnv("DB_NAME", cfg.Database.Database)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", cfg.Database.MaxConns)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.Remote.BaseURL = getEnv("REMOTE_BASE_URL", cfg.Remote.BaseURL)
	cfg.Remote.TimeoutSeconds = getEnvInt("REMOTE_TIMEOUT", cfg.Remote.TimeoutSeconds)
	cfg.Remote.RetryCount = getEnvInt("REMOTE_RETRY_COUNT", cfg.Remote.RetryCount)

	cfg.Preferences.Backend = getEnv("PREFS_BACKEND", cfg.Preferences.Backend)
	cfg.Preferences.Path = getEnv("PREFS_PATH", cfg.Preferences.Path)

	cfg.Notifications.DefaultDurationMS = getEnvInt("NOTIFY_DURATION_MS", cfg.Notifications.DefaultDurationMS)
	cfg.Notifications.MQTT.Broker = getEnv("MQTT_BROKER", cfg.Notifications.MQTT.Broker)
	cfg.Notifications.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", cfg.Notifications.MQTT.ClientID)
	cfg.Notifications.MQTT.Username = getEnv("MQTT_USERNAME", cfg.Notifications.MQTT.Username)
	cfg.Notifications.MQTT.Password = getEnv("MQTT_PASSWORD", cfg.Notifications.MQTT.Password)
	cfg.Notifications.MQTT.Topic = getEnv("MQTT_TOPIC", cfg.Notifications.MQTT.Topic)

	cfg.Watch.IntervalSeconds = getEnvInt("WATCH_INTERVAL", cfg.Watch.IntervalSeconds)
	cfg.Watch.MetricsAddr = getEnv("WATCH_METRICS_ADDR", cfg.Watch.MetricsAddr)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enumerations and non-positive durations.
func (c *Config) Validate() error {
	var errs []error
	switch c.Source.Kind {
	case SourceFixtures, SourcePostgres, SourceRemote:
	default:
		errs = append(errs, fmt.Errorf("unknown data source %q", c.Source.Kind))
	}
	switch c.Preferences.Backend {
	case BackendMemory, BackendRedis:
	case BackendFile:
		if c.Preferences.Path == "" {
			errs = append(errs, errors.New("file preference backend needs a path"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown preference backend %q", c.Preferences.Backend))
	}
	if c.Source.Kind == SourceRemote && c.Remote.BaseURL == "" {
		errs = append(errs, errors.New("remote source needs a base url"))
	}
	if c.Watch.IntervalSeconds <= 0 {
		errs = append(errs, fmt.Errorf("watch interval must be positive, got %d", c.Watch.IntervalSeconds))
	}
	if c.Notifications.DefaultDurationMS <= 0 {
		errs = append(errs, fmt.Errorf("notification duration must be positive, got %d", c.Notifications.DefaultDurationMS))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WatchInterval is the polling period of the dashboard service.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.Watch.IntervalSeconds) * time.Second
}

// NotificationDuration is the default auto-close delay.
func (c *Config) NotificationDuration() time.Duration {
	return time.Duration(c.Notifications.DefaultDurationMS) * time.Millisecond
}

// RemoteTimeout is the per-request timeout of the remote source.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
