package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	AIAssist AIAssistConfig `toml:"ai_assist"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig настройки файлового хранилища заявок
type StorageConfig struct {
	File string `toml:"file"`
}

// AIAssistConfig настройки клиента chat-completion API.
// Ключ API в конфиг-файл не пишется - только переменная окружения OPENAI_API_KEY.
type AIAssistConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"` // секунды

	APIKey string `toml:"-"`
}

// CORSConfig настройки CORS для браузерного фронта
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML-файла и дополняет ее из окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.AIAssist.APIKey = os.Getenv("OPENAI_API_KEY")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
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
		c.Metrics.ServiceName = "clinic-service"
	}
	if c.Storage.File == "" {
		c.Storage.File = "data/appointments.json"
	}
	if c.AIAssist.BaseURL == "" {
		c.AIAssist.BaseURL = "https://api.openai.com/v1"
	}
	if c.AIAssist.Model == "" {
		c.AIAssist.Model = "gpt-3.5-turbo"
	}
	if c.AIAssist.Timeout == 0 {
		c.AIAssist.Timeout = 30
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	return nil
}
