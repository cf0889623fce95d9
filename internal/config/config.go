package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml (необязательно) и переменных окружения через cleanenv.
// Без файла и без env программа работает со значениями по умолчанию.

type Config struct {
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Logger    LoggerConfig    `yaml:"logger"`
	Server    ServerConfig    `yaml:"server"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3"`
	Timeout   time.Duration `yaml:"timeout" env:"COINGECKO_TIMEOUT" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"COINGECKO_USER_AGENT" env-default:"fav-crypto/1.0"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"warn"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"12s"`
}

type TelegramConfig struct {
	Token       string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	PollTimeout time.Duration `yaml:"poll_timeout" env-default:"10s"`
}

// LoadConfig - читает конфиг из файла (если путь задан) и затем из окружения.
// Пустой path означает: смотрим CONFIG_PATH, а если и его нет, то только env + значения по умолчанию.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
