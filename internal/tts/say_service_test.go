package tts

import (
	"testing"
)

func TestParseSayVoices(t *testing.T) {
	output := []byte(`Alex                en_US    # Most people recognize me by my voice.
Bad News            en_US    # The light you see at the end of the tunnel is the headlamp of a fast approaching train.
Milena              ru_RU    # Здравствуйте, меня зовут Milena.
`)

	voices := parseSayVoices(output)

	if len(voices) != 3 {
		t.Fatalf("ожидалось 3 голоса, получено %d", len(voices))
	}

	if voices[0].Name != "Alex" {
		t.Errorf("ожидалось имя 'Alex', получено '%s'", voices[0].Name)
	}

	// Имя голоса может содержать пробелы
	if voices[1].Name != "Bad News" {
		t.Errorf("ожидалось имя 'Bad News', получено '%s'", voices[1].Name)
	}

	if voices[2].Languages[0] != "ru_RU" {
		t.Errorf("ожидалась локаль 'ru_RU', получена '%s'", voices[2].Languages[0])
	}

	for i, voice := range voices {
		if voice.Index != i {
			t.Errorf("ожидался индекс %d, получен %d", i, voice.Index)
		}
	}
}

func TestParseSayVoicesEmpty(t *testing.T) {
	voices := parseSayVoices([]byte("\n"))

	if len(voices) != 0 {
		t.Errorf("ожидался пустой список, получено %d голосов", len(voices))
	}
}
