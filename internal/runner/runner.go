package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"golos-tts/internal/tts"
	"golos-tts/pkg/models"
)

// EngineFactory создает новый движок синтеза речи.
// Runner запрашивает свежий движок на каждую операцию,
// никакое состояние движка не переживает отдельный вызов.
type EngineFactory func() (tts.SynthesisEngine, error)

// Runner выполняет запросы на озвучивание текста
type Runner struct {
	newEngine EngineFactory
	logger    *zap.Logger
	out       io.Writer
}

// New создает новый Runner
func New(newEngine EngineFactory, logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		newEngine: newEngine,
		logger:    logger,
		out:       out,
	}
}

// ListVoices печатает список доступных голосов с их индексами
func (r *Runner) ListVoices(ctx context.Context) error {
	engine, err := r.newEngine()
	if err != nil {
		return fmt.Errorf("ошибка инициализации движка: %w", err)
	}

	voices, err := engine.Voices(ctx)
	if err != nil {
		return fmt.Errorf("ошибка получения списка голосов: %w", err)
	}

	if len(voices) == 0 {
		r.logger.Warn("движок не сообщил ни одного голоса", zap.String("engine", engine.Name()))
		return nil
	}

	for _, voice := range voices {
		fmt.Fprintf(r.out, "Voice %d: %s - [%s]\n", voice.Index, voice.Name, strings.Join(voice.Languages, ", "))
	}

	return nil
}

// Speak настраивает свежий движок и озвучивает запрос,
// блокируясь до завершения воспроизведения
func (r *Runner) Speak(ctx context.Context, req models.SpeechRequest) error {
	engine, err := r.newEngine()
	if err != nil {
		return fmt.Errorf("ошибка инициализации движка: %w", err)
	}

	engine.SetRate(req.Rate)

	if req.VoiceIndex != nil {
		voices, err := engine.Voices(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения списка голосов: %w", err)
		}

		index := *req.VoiceIndex
		if index >= 0 && index < len(voices) {
			engine.SetVoice(voices[index])
		} else {
			// Некорректный индекс не фатален: движок озвучит голосом по умолчанию
			fmt.Fprintln(r.out, "Invalid voice index. Using default voice.")
			r.logger.Warn("некорректный индекс голоса, используется голос по умолчанию",
				zap.Int("voice_index", index),
				zap.Int("voices_count", len(voices)))
		}
	}

	if err := engine.Say(ctx, req.Text); err != nil {
		return fmt.Errorf("ошибка озвучивания: %w", err)
	}

	return nil
}
