package main

import (
	"context"
	"fmt"
	"os"

	"golos-tts/internal/config"
	"golos-tts/internal/runner"
	"golos-tts/internal/tts"

	"go.uber.org/zap"
)

func main() {
	// Инициализация логгера
	logger, err := initLogger()
	if err != nil {
		fmt.Printf("Ошибка инициализации логгера: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("запуск Golos TTS")

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("ошибка загрузки конфигурации", zap.Error(err))
	}

	logger.Info("конфигурация TTS",
		zap.String("engine", cfg.TTS.Engine),
		zap.Int("default_rate", cfg.TTS.DefaultRate),
		zap.Int("default_voice_index", cfg.TTS.DefaultVoiceIndex))

	// Инициализация раннера: движок создается заново на каждую операцию
	speechRunner := runner.New(func() (tts.SynthesisEngine, error) {
		return tts.NewEngine(&cfg.TTS, logger)
	}, logger, os.Stdout)

	ctx := context.Background()

	// Печатаем доступные голоса
	if err := speechRunner.ListVoices(ctx); err != nil {
		logger.Fatal("ошибка получения списка голосов", zap.Error(err))
	}

	// Собираем запрос из интерактивных подсказок
	req, err := runner.ReadRequest(os.Stdin, os.Stdout, cfg.TTS.DefaultRate, cfg.TTS.DefaultVoiceIndex)
	if err != nil {
		logger.Fatal("ошибка чтения запроса", zap.Error(err))
	}

	// Озвучиваем и ждем завершения воспроизведения
	if err := speechRunner.Speak(ctx, req); err != nil {
		logger.Fatal("ошибка озвучивания", zap.Error(err))
	}

	logger.Info("озвучивание завершено")
}

// initLogger инициализирует логгер
func initLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()

	// stdout отдан подсказкам и списку голосов
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}
