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

// SayService предоставляет синтез речи через macOS `say`
type SayService struct {
	logger *zap.Logger
	binary string
	rate   int
	voice  *models.Voice
}

// NewSayService создает новый say движок.
// На системах без утилиты say конструктор возвращает ошибку,
// и автоопределение переходит к следующему движку.
func NewSayService(logger *zap.Logger) (*SayService, error) {
	path, err := exec.LookPath("say")
	if err != nil {
		return nil, fmt.Errorf("say не найден: %w", err)
	}

	logger.Debug("найден say", zap.String("binary", path))
	return &SayService{
		logger: logger,
		binary: path,
	}, nil
}

// Name возвращает имя движка
func (s *SayService) Name() string {
	return "say"
}

// Voices возвращает список голосов из вывода `say -v ?`
func (s *SayService) Voices(ctx context.Context) ([]models.Voice, error) {
	cmd := exec.CommandContext(ctx, s.binary, "-v", "?")

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка голосов say: %w", err)
	}

	return parseSayVoices(output), nil
}

// SetRate устанавливает скорость речи (слов в минуту)
func (s *SayService) SetRate(rate int) {
	s.rate = rate
}

// SetVoice выбирает голос для озвучивания
func (s *SayService) SetVoice(voice models.Voice) {
	s.voice = &voice
}

// Say озвучивает текст и блокируется до завершения воспроизведения
func (s *SayService) Say(ctx context.Context, text string) error {
	args := []string{}
	if s.rate > 0 {
		args = append(args, "-r", strconv.Itoa(s.rate))
	}
	if s.voice != nil {
		args = append(args, "-v", s.voice.ID)
	}
	args = append(args, text)

	s.logger.Info("🎵 озвучиваем текст через say",
		zap.String("text", text),
		zap.Int("rate", s.rate))

	cmd := exec.CommandContext(ctx, s.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.logger.Error("ошибка выполнения say",
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return fmt.Errorf("ошибка выполнения say: %w", err)
	}

	return nil
}

// parseSayVoices разбирает вывод `say -v ?`.
// Формат строки: "<имя голоса> <локаль> # <пример фразы>",
// имя голоса может содержать пробелы (например "Bad News").
func parseSayVoices(output []byte) []models.Voice {
	var voices []models.Voice

	for _, line := range strings.Split(string(output), "\n") {
		entry, _, _ := strings.Cut(line, "#")

		fields := strings.Fields(entry)
		if len(fields) < 2 {
			continue
		}

		name := strings.Join(fields[:len(fields)-1], " ")
		locale := fields[len(fields)-1]

		voices = append(voices, models.Voice{
			Index:     len(voices),
			ID:        name,
			Name:      name,
			Languages: []string{locale},
		})
	}

	return voices
}
