package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequestDefaults(t *testing.T) {
	in := strings.NewReader("Hello world\n\n\n")
	out := &bytes.Buffer{}

	req, err := ReadRequest(in, out, 150, 0)

	require.NoError(t, err)
	assert.Equal(t, "Hello world", req.Text)
	assert.Equal(t, 150, req.Rate)
	require.NotNil(t, req.VoiceIndex)
	assert.Equal(t, 0, *req.VoiceIndex)

	// Подсказки печатаются в порядке ввода
	assert.Contains(t, out.String(), "Enter text to convert to speech: ")
	assert.Contains(t, out.String(), "Enter speech rate (default is 150): ")
	assert.Contains(t, out.String(), "Enter voice index (default is 0): ")
}

func TestReadRequestExplicitValues(t *testing.T) {
	in := strings.NewReader("Привет\n200\n2\n")

	req, err := ReadRequest(in, &bytes.Buffer{}, 150, 0)

	require.NoError(t, err)
	assert.Equal(t, "Привет", req.Text)
	assert.Equal(t, 200, req.Rate)
	assert.Equal(t, 2, *req.VoiceIndex)
}

func TestReadRequestEmptyText(t *testing.T) {
	// Пустой текст допускается, валидации нет
	in := strings.NewReader("\n\n\n")

	req, err := ReadRequest(in, &bytes.Buffer{}, 150, 0)

	require.NoError(t, err)
	assert.Equal(t, "", req.Text)
}

func TestReadRequestMalformedRate(t *testing.T) {
	in := strings.NewReader("Hello\nfast\n0\n")

	_, err := ReadRequest(in, &bytes.Buffer{}, 150, 0)

	assert.Error(t, err)
}

func TestReadRequestMalformedVoiceIndex(t *testing.T) {
	in := strings.NewReader("Hello\n150\nfirst\n")

	_, err := ReadRequest(in, &bytes.Buffer{}, 150, 0)

	assert.Error(t, err)
}

func TestReadRequestTruncatedInput(t *testing.T) {
	in := strings.NewReader("Hello\n")

	_, err := ReadRequest(in, &bytes.Buffer{}, 150, 0)

	assert.Error(t, err)
}
