package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server            Server            `toml:"server"`
	Database          Database          `toml:"database"`
	Logs              Logs              `toml:"logs"`
	Metrics           Metrics           `toml:"metrics"`
	PricingService    Integration       `toml:"pricing_service"`
	ComplianceService Integration       `toml:"compliance_service"`
	Scheduling        Scheduling        `toml:"scheduling"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к базе данных
func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Integration настройки клиента внешнего сервиса
type Integration struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Scheduling настройки планировщика доступности.
// Нули заменяются дефолтами при загрузке.
type Scheduling struct {
	HoldTTLMinutes int `toml:"hold_ttl_minutes"`
	BufferMinutes  int `toml:"buffer_minutes"`
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Scheduling.HoldTTLMinutes <= 0 {
		cfg.Scheduling.HoldTTLMinutes = domain.DefaultHoldTTLMinutes
	}
	if cfg.Scheduling.BufferMinutes <= 0 {
		cfg.Scheduling.BufferMinutes = domain.DefaultBufferMinutes
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	if c.PricingService.URL == "" {
		return fmt.Errorf("config: pricing_service.url is required")
	}
	if c.ComplianceService.URL == "" {
		return fmt.Errorf("config: compliance_service.url is required")
	}
	return nil
}
