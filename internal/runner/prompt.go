package runner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golos-tts/pkg/models"
)

// ReadRequest собирает запрос на озвучивание из интерактивных подсказок.
// Пустой ввод скорости и индекса голоса заменяется значениями по умолчанию,
// некорректные числа возвращают ошибку.
func ReadRequest(in io.Reader, out io.Writer, defaultRate, defaultVoiceIndex int) (models.SpeechRequest, error) {
	reader := bufio.NewScanner(in)

	fmt.Fprint(out, "Enter text to convert to speech: ")
	text, err := readLine(reader)
	if err != nil {
		return models.SpeechRequest{}, fmt.Errorf("ошибка чтения текста: %w", err)
	}

	fmt.Fprintf(out, "Enter speech rate (default is %d): ", defaultRate)
	rate, err := readIntDefault(reader, defaultRate)
	if err != nil {
		return models.SpeechRequest{}, fmt.Errorf("некорректная скорость речи: %w", err)
	}

	fmt.Fprintf(out, "Enter voice index (default is %d): ", defaultVoiceIndex)
	voiceIndex, err := readIntDefault(reader, defaultVoiceIndex)
	if err != nil {
		return models.SpeechRequest{}, fmt.Errorf("некорректный индекс голоса: %w", err)
	}

	return models.SpeechRequest{
		Text:       text,
		Rate:       rate,
		VoiceIndex: &voiceIndex,
	}, nil
}

// readLine читает одну строку ввода, пустая строка допускается
func readLine(reader *bufio.Scanner) (string, error) {
	if !reader.Scan() {
		if err := reader.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return reader.Text(), nil
}

// readIntDefault читает целое число, пустой ввод заменяется значением по умолчанию
func readIntDefault(reader *bufio.Scanner, def int) (int, error) {
	line, err := readLine(reader)
	if err != nil {
		return 0, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}

	return strconv.Atoi(line)
}
