package tts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"golos-tts/pkg/models"
)

// festivalReferenceRate — скорость речи, при которой Duration_Stretch равен 1.0
const festivalReferenceRate = 150

// festivalVoice описывает известный голос Festival
type festivalVoice struct {
	symbol    string // символ голоса для -eval "(voice_<symbol>)"
	name      string
	languages []string
}

// festivalVoiceCatalog — список голосов в порядке предпочтения (от лучшего к худшему)
var festivalVoiceCatalog = []festivalVoice{
	{symbol: "us1_mbrola", name: "us1_mbrola", languages: []string{"en-us"}},  // Американский женский голос (MBROLA)
	{symbol: "us2_mbrola", name: "us2_mbrola", languages: []string{"en-us"}},  // Американский мужской голос (MBROLA)
	{symbol: "us3_mbrola", name: "us3_mbrola", languages: []string{"en-us"}},  // Американский мужской голос (MBROLA)
	{symbol: "rab_diphone", name: "rab_diphone", languages: []string{"en-gb"}}, // Британский голос
	{symbol: "kal_diphone", name: "kal_diphone", languages: []string{"en-us"}}, // Стандартный голос
}

// FestivalService предоставляет синтез речи через Festival
type FestivalService struct {
	logger *zap.Logger
	rate   int
	voice  *models.Voice
}

// NewFestivalService создает новый Festival движок
func NewFestivalService(logger *zap.Logger) (*FestivalService, error) {
	s := &FestivalService{logger: logger}

	if err := s.checkFestival(); err != nil {
		return nil, fmt.Errorf("festival не установлен: %w", err)
	}

	return s, nil
}

// Name возвращает имя движка
func (s *FestivalService) Name() string {
	return "festival"
}

// Voices возвращает доступные на хосте голоса из каталога Festival
func (s *FestivalService) Voices(ctx context.Context) ([]models.Voice, error) {
	var voices []models.Voice

	for _, candidate := range festivalVoiceCatalog {
		cmd := exec.CommandContext(ctx, "festival",
			"-eval", fmt.Sprintf("(voice_%s)", candidate.symbol),
			"-eval", "(exit)")
		if err := cmd.Run(); err != nil {
			s.logger.Debug("голос festival недоступен", zap.String("voice", candidate.symbol))
			continue
		}

		voices = append(voices, models.Voice{
			Index:     len(voices),
			ID:        candidate.symbol,
			Name:      candidate.name,
			Languages: candidate.languages,
		})
	}

	return voices, nil
}

// SetRate устанавливает скорость речи (слов в минуту)
func (s *FestivalService) SetRate(rate int) {
	s.rate = rate
}

// SetVoice выбирает голос для озвучивания
func (s *FestivalService) SetVoice(voice models.Voice) {
	s.voice = &voice
}

// Say озвучивает текст и блокируется до завершения воспроизведения
func (s *FestivalService) Say(ctx context.Context, text string) error {
	// Festival читает текст из файла
	tempTextFile := fmt.Sprintf("%s/festival_text_%d.txt", os.TempDir(), time.Now().UnixNano())

	if err := s.writeTextFile(tempTextFile, text); err != nil {
		return fmt.Errorf("ошибка записи текста: %w", err)
	}
	defer s.cleanupFile(tempTextFile)

	args := []string{}
	if s.voice != nil {
		args = append(args, "-eval", fmt.Sprintf("(voice_%s)", s.voice.ID))
	}
	if s.rate > 0 {
		args = append(args,
			"-eval", fmt.Sprintf("(Parameter.set 'Duration_Stretch %.2f)", durationStretch(s.rate)))
	}
	args = append(args, "--tts", tempTextFile)

	s.logger.Info("🎵 озвучиваем текст через festival",
		zap.String("text", text),
		zap.Int("rate", s.rate))

	cmd := exec.CommandContext(ctx, "festival", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.logger.Error("ошибка выполнения festival",
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return fmt.Errorf("ошибка выполнения festival: %w", err)
	}

	return nil
}

// checkFestival проверяет, что Festival установлен
func (s *FestivalService) checkFestival() error {
	cmd := exec.Command("festival", "--version")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("festival не найден: %w", err)
	}

	s.logger.Debug("Festival версия", zap.String("version", string(output)))
	return nil
}

// durationStretch переводит скорость речи в коэффициент растяжения Festival.
// Скорость 150 соответствует коэффициенту 1.0, большая скорость — меньшему коэффициенту.
func durationStretch(rate int) float64 {
	return float64(festivalReferenceRate) / float64(rate)
}

// writeTextFile записывает текст во временный файл
func (s *FestivalService) writeTextFile(filename, text string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(text)
	return err
}

// cleanupFile удаляет временный файл
func (s *FestivalService) cleanupFile(filename string) {
	if err := os.Remove(filename); err != nil {
		s.logger.Warn("ошибка удаления временного файла",
			zap.String("filename", filename),
			zap.Error(err))
	}
}
