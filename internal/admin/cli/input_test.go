package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Prompt", &out)
	assert.Error(t, err)
}

func TestGetText_EmptyKeepsCurrent(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\n"))

	got := getText(reader, "Title", "current", &out)
	assert.Equal(t, "current", got)
	assert.Contains(t, out.String(), "[current]")
}

func TestGetText_ReplacesCurrent(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("new value\n"))

	got := getText(reader, "Title", "current", &out)
	assert.Equal(t, "new value", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("42\n\nnot-a-number\n"))

	assert.Equal(t, 42, getInt(reader, "Score", 0, &out))
	assert.Equal(t, 7, getInt(reader, "Score", 7, &out), "empty input keeps the current value")
	assert.Equal(t, 7, getInt(reader, "Score", 7, &out), "unparsable input keeps the current value")
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pw)
	assert.Contains(t, out.String(), "Password:")
}

func TestGetPassword_ReadError(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	_, err := GetPassword(&out)
	assert.Error(t, err)
}
