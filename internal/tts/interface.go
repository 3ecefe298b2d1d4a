package tts

import (
	"context"

	"golos-tts/pkg/models"
)

// SynthesisEngine представляет интерфейс движка синтеза речи.
// Движок создается заново на каждый запрос и не хранит глобального состояния.
type SynthesisEngine interface {
	// Name возвращает имя движка
	Name() string

	// Voices возвращает список доступных голосов движка
	Voices(ctx context.Context) ([]models.Voice, error)

	// SetRate устанавливает скорость речи (слов в минуту)
	SetRate(rate int)

	// SetVoice выбирает голос для озвучивания
	SetVoice(voice models.Voice)

	// Say озвучивает текст через аудиоустройство по умолчанию
	// и блокируется до завершения воспроизведения
	Say(ctx context.Context, text string) error
}
