package tts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"golos-tts/pkg/models"
)

// EspeakService предоставляет синтез речи через espeak-ng/espeak
type EspeakService struct {
	logger *zap.Logger
	binary string
	rate   int
	voice  *models.Voice
}

// NewEspeakService создает новый espeak движок.
// Предпочитается espeak-ng, при его отсутствии используется espeak.
func NewEspeakService(logger *zap.Logger) (*EspeakService, error) {
	for _, bin := range []string{"espeak-ng", "espeak"} {
		path, err := exec.LookPath(bin)
		if err != nil {
			continue
		}

		logger.Debug("найден espeak", zap.String("binary", path))
		return &EspeakService{
			logger: logger,
			binary: path,
		}, nil
	}

	return nil, fmt.Errorf("espeak не найден: установите espeak-ng или espeak")
}

// Name возвращает имя движка
func (s *EspeakService) Name() string {
	return "espeak"
}

// Voices возвращает список голосов из таблицы `espeak --voices`
func (s *EspeakService) Voices(ctx context.Context) ([]models.Voice, error) {
	cmd := exec.CommandContext(ctx, s.binary, "--voices")

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка голосов espeak: %w", err)
	}

	return parseEspeakVoices(output), nil
}

// SetRate устанавливает скорость речи (слов в минуту)
func (s *EspeakService) SetRate(rate int) {
	s.rate = rate
}

// SetVoice выбирает голос для озвучивания
func (s *EspeakService) SetVoice(voice models.Voice) {
	s.voice = &voice
}

// Say озвучивает текст и блокируется до завершения воспроизведения
func (s *EspeakService) Say(ctx context.Context, text string) error {
	args := []string{}
	if s.rate > 0 {
		args = append(args, "-s", strconv.Itoa(s.rate))
	}
	if s.voice != nil {
		args = append(args, "-v", s.voice.ID)
	}
	args = append(args, text)

	s.logger.Info("🎵 озвучиваем текст через espeak",
		zap.String("text", text),
		zap.Int("rate", s.rate))

	cmd := exec.CommandContext(ctx, s.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.logger.Error("ошибка выполнения espeak",
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return fmt.Errorf("ошибка выполнения espeak: %w", err)
	}

	return nil
}

// parseEspeakVoices разбирает табличный вывод `espeak --voices`.
// Формат: Pty Language Age/Gender VoiceName File [Other Languages]
func parseEspeakVoices(output []byte) []models.Voice {
	var voices []models.Voice

	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		// Заголовок и мусорные строки отсеиваются по числовому приоритету
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}

		languages := []string{fields[1]}
		languages = append(languages, parseExtraLanguages(fields[5:])...)

		voices = append(voices, models.Voice{
			Index:     len(voices),
			ID:        fields[1],
			Name:      fields[3],
			Languages: languages,
		})
	}

	return voices
}

// parseExtraLanguages извлекает дополнительные языковые теги вида "(en-uk 5)"
func parseExtraLanguages(fields []string) []string {
	var languages []string

	for _, part := range strings.Split(strings.Join(fields, " "), "(") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lang, _, found := strings.Cut(part, " ")
		if !found {
			continue
		}

		languages = append(languages, lang)
	}

	return languages
}
