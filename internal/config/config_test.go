package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Устанавливаем переменные окружения для теста
	os.Setenv("TTS_ENGINE", "espeak")
	os.Setenv("TTS_DEFAULT_RATE", "200")
	defer os.Unsetenv("TTS_ENGINE")
	defer os.Unsetenv("TTS_DEFAULT_RATE")

	// Загружаем конфигурацию
	cfg, err := Load()

	// Проверяем, что конфигурация загружена без ошибок
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Проверяем значения
	assert.Equal(t, "espeak", cfg.TTS.Engine)
	assert.Equal(t, 200, cfg.TTS.DefaultRate)

	// Проверяем значения по умолчанию
	assert.Equal(t, 0, cfg.TTS.DefaultVoiceIndex)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("TTS_ENGINE")
	os.Unsetenv("TTS_DEFAULT_RATE")
	os.Unsetenv("TTS_DEFAULT_VOICE_INDEX")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "auto", cfg.TTS.Engine)
	assert.Equal(t, 150, cfg.TTS.DefaultRate)
	assert.Equal(t, 0, cfg.TTS.DefaultVoiceIndex)
}

func TestAppConfigMethods(t *testing.T) {
	cfg := &AppConfig{
		Env:      "development",
		LogLevel: "debug",
	}

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Env = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestValidateConfig(t *testing.T) {
	// Тест с некорректной скоростью
	cfg := &Config{
		TTS: TTSConfig{Engine: "auto", DefaultRate: 0},
	}
	err := validateConfig(cfg)
	assert.Error(t, err)

	// Тест с отрицательным индексом голоса
	cfg = &Config{
		TTS: TTSConfig{Engine: "auto", DefaultRate: 150, DefaultVoiceIndex: -1},
	}
	err = validateConfig(cfg)
	assert.Error(t, err)

	// Тест с неподдерживаемым движком
	cfg = &Config{
		TTS: TTSConfig{Engine: "sapi", DefaultRate: 150},
	}
	err = validateConfig(cfg)
	assert.Error(t, err)

	// Тест с корректной конфигурацией
	cfg = &Config{
		TTS: TTSConfig{Engine: "festival", DefaultRate: 150, DefaultVoiceIndex: 2},
	}
	err = validateConfig(cfg)
	assert.NoError(t, err)
}
