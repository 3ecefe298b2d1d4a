package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит все конфигурационные параметры приложения
type Config struct {
	TTS TTSConfig
	App AppConfig
}

// TTSConfig содержит настройки движка синтеза речи
type TTSConfig struct {
	Engine            string // espeak, say, festival или auto
	DefaultRate       int    // скорость речи по умолчанию (слов в минуту)
	DefaultVoiceIndex int    // индекс голоса по умолчанию
}

// AppConfig содержит общие настройки приложения
type AppConfig struct {
	Env      string
	LogLevel string
}

// SupportedEngines перечисляет поддерживаемые движки синтеза речи
var SupportedEngines = []string{"auto", "espeak", "say", "festival"}

// Load загружает конфигурацию из переменных окружения и .env
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// TTS
	cfg.TTS.Engine = getEnvDefault("TTS_ENGINE", "auto")
	cfg.TTS.DefaultRate = getEnvIntDefault("TTS_DEFAULT_RATE", 150)
	cfg.TTS.DefaultVoiceIndex = getEnvIntDefault("TTS_DEFAULT_VOICE_INDEX", 0)

	// App
	cfg.App.Env = getEnvDefault("APP_ENV", "development")
	cfg.App.LogLevel = getEnvDefault("LOG_LEVEL", "info")

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return cfg, nil
}

// IsDevelopment возвращает true для окружения разработки
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction возвращает true для продакшен окружения
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// validateConfig проверяет корректность конфигурации
func validateConfig(cfg *Config) error {
	if cfg.TTS.DefaultRate <= 0 {
		return fmt.Errorf("TTS_DEFAULT_RATE должен быть положительным, получено %d", cfg.TTS.DefaultRate)
	}

	if cfg.TTS.DefaultVoiceIndex < 0 {
		return fmt.Errorf("TTS_DEFAULT_VOICE_INDEX не может быть отрицательным, получено %d", cfg.TTS.DefaultVoiceIndex)
	}

	for _, engine := range SupportedEngines {
		if cfg.TTS.Engine == engine {
			return nil
		}
	}

	return fmt.Errorf("неподдерживаемый TTS движок: %s. Поддерживаются: 'auto', 'espeak', 'say', 'festival'", cfg.TTS.Engine)
}

func getEnvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
