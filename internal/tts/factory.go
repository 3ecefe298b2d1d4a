package tts

import (
	"fmt"

	"go.uber.org/zap"

	"golos-tts/internal/config"
)

// NewEngine создает новый движок синтеза речи на основе конфигурации
func NewEngine(cfg *config.TTSConfig, logger *zap.Logger) (SynthesisEngine, error) {
	switch cfg.Engine {
	case "espeak":
		return NewEspeakService(logger)
	case "say":
		return NewSayService(logger)
	case "festival":
		return NewFestivalService(logger)
	case "auto", "":
		return detectEngine(logger)
	default:
		return nil, fmt.Errorf("неподдерживаемый TTS движок: %s. Поддерживаются: 'espeak', 'say', 'festival', 'auto'", cfg.Engine)
	}
}

// detectEngine возвращает первый доступный на хосте движок
func detectEngine(logger *zap.Logger) (SynthesisEngine, error) {
	constructors := []func(*zap.Logger) (SynthesisEngine, error){
		func(l *zap.Logger) (SynthesisEngine, error) { return NewEspeakService(l) },
		func(l *zap.Logger) (SynthesisEngine, error) { return NewSayService(l) },
		func(l *zap.Logger) (SynthesisEngine, error) { return NewFestivalService(l) },
	}

	for _, construct := range constructors {
		engine, err := construct(logger)
		if err != nil {
			logger.Debug("движок недоступен", zap.Error(err))
			continue
		}

		logger.Info("🎤 выбран движок синтеза речи", zap.String("engine", engine.Name()))
		return engine, nil
	}

	return nil, fmt.Errorf("не найден ни один движок синтеза речи: установите espeak-ng, say или festival")
}
