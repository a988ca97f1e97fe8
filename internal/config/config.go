package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Драйверы хранилища токена
const (
	TokenStoreFile  = "file"
	TokenStoreRedis = "redis"
)

// Config корневая конфигурация приложения
type Config struct {
	App        AppConfig        `toml:"app"`
	Logs       LogsConfig       `toml:"logs"`
	Server     ServerConfig     `toml:"server"`
	Metrics    MetricsConfig    `toml:"metrics"`
	HotelAPI   HotelAPIConfig   `toml:"hotel_api"`
	Auth       AuthConfig       `toml:"auth"`
	TokenStore TokenStoreConfig `toml:"token_store"`
	Tracker    TrackerConfig    `toml:"tracker"`
}

type AppConfig struct {
	Name string `toml:"name"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ServerConfig локальный HTTP сервер с представлением трекера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelAPIConfig backend гостиницы (timeout в секундах)
type HotelAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// AuthConfig настройки декодирования токена
// Если SigningKey пуст, подпись не проверяется
type AuthConfig struct {
	IDClaim    string `toml:"id_claim"`
	RoleClaim  string `toml:"role_claim"`
	SigningKey string `toml:"signing_key"`
}

type TokenStoreConfig struct {
	Driver        string `toml:"driver"`
	Path          string `toml:"path"`
	RedisAddress  string `toml:"redis_address"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisKey      string `toml:"redis_key"`
}

type TrackerConfig struct {
	PollIntervalMs int    `toml:"poll_interval_ms"`
	TickIntervalMs int    `toml:"tick_interval_ms"`
	Timezone       string `toml:"timezone"`
}

// PollInterval интервал обновления списка бронирований
func (c TrackerConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// TickInterval интервал пересчёта обратного отсчёта
func (c TrackerConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Location часовой пояс для дат без зоны
func (c TrackerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load читает TOML-файл, подставляет переменные окружения, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "hotel-booking-tracker"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8090
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hotel_booking_tracker"
	}

	if c.HotelAPI.Timeout == 0 {
		c.HotelAPI.Timeout = 10
	}

	if c.Auth.IDClaim == "" {
		c.Auth.IDClaim = "clientId"
	}
	if c.Auth.RoleClaim == "" {
		c.Auth.RoleClaim = "role"
	}

	if c.TokenStore.Driver == "" {
		c.TokenStore.Driver = TokenStoreFile
	}
	if c.TokenStore.RedisKey == "" {
		c.TokenStore.RedisKey = "hotel:auth:token"
	}

	if c.Tracker.PollIntervalMs == 0 {
		c.Tracker.PollIntervalMs = 15000
	}
	if c.Tracker.TickIntervalMs == 0 {
		c.Tracker.TickIntervalMs = 1000
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.HotelAPI.URL == "" {
		return fmt.Errorf("%w: hotel_api.url is required", ErrInvalidConfig)
	}
	if c.HotelAPI.Timeout < 0 {
		return fmt.Errorf("%w: hotel_api.timeout must not be negative", ErrInvalidConfig)
	}

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.TokenStore.Driver {
	case TokenStoreFile:
		if c.TokenStore.Path == "" {
			return fmt.Errorf("%w: token_store.path is required for file driver", ErrInvalidConfig)
		}
	case TokenStoreRedis:
		if c.TokenStore.RedisAddress == "" {
			return fmt.Errorf("%w: token_store.redis_address is required for redis driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown token_store.driver %q", ErrInvalidConfig, c.TokenStore.Driver)
	}

	if c.Tracker.PollIntervalMs < 0 || c.Tracker.TickIntervalMs < 0 {
		return fmt.Errorf("%w: tracker intervals must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Tracker.Location(); err != nil {
		return fmt.Errorf("%w: tracker.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
