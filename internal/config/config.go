package config

import (
	"flag"
	"os"
	"time"
)

// Config содержит конфигурацию приложения.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	SellerAPIAddress string
	SellerTimeout    time.Duration
	JWTSecret        string
	TokenExpiration  time.Duration
	Debug            bool
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
func Load() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "адрес и порт запуска сервиса")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "строка подключения к PostgreSQL")
	flag.StringVar(&cfg.SellerAPIAddress, "r", "", "адрес API продавца")
	flag.BoolVar(&cfg.Debug, "debug", false, "подробное логирование")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDRESS"); envRunAddr != "" {
		cfg.RunAddress = envRunAddr
	}
	if envDBURI := os.Getenv("DATABASE_URI"); envDBURI != "" {
		cfg.DatabaseURI = envDBURI
	}
	if envSeller := os.Getenv("SELLER_API_ADDRESS"); envSeller != "" {
		cfg.SellerAPIAddress = envSeller
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	// JWT секрет
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default-secret-change-in-production"
	}

	// Время жизни токена
	cfg.TokenExpiration = 24 * time.Hour
	if envExp := os.Getenv("TOKEN_EXPIRATION"); envExp != "" {
		if d, err := time.ParseDuration(envExp); err == nil {
			cfg.TokenExpiration = d
		}
	}

	// Таймаут запросов к API продавца
	cfg.SellerTimeout = 10 * time.Second
	if envTimeout := os.Getenv("SELLER_API_TIMEOUT"); envTimeout != "" {
		if d, err := time.ParseDuration(envTimeout); err == nil {
			cfg.SellerTimeout = d
		}
	}

	return cfg
}
