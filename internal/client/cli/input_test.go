package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("  Consulta pré-natal  \n"), "Nome", &out)
	require.NoError(t, err)
	assert.Equal(t, "Consulta pré-natal", got)
	assert.Contains(t, out.String(), "Nome")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("sem quebra de linha"), "Nome", &out)
	require.NoError(t, err)
	assert.Equal(t, "sem quebra de linha", got)
}

func TestGetFieldWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetFieldWithDefault(reader("\n"), "Nome", "Maria", &out)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got, "empty answer keeps the current value")
	assert.Contains(t, out.String(), "[Maria]")

	got, err = GetFieldWithDefault(reader("Maria Clara\n"), "Nome", "Maria", &out)
	require.NoError(t, err)
	assert.Equal(t, "Maria Clara", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("Senha!123"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out, "Senha")
	require.NoError(t, err)
	assert.Equal(t, "Senha!123", got)
	assert.Contains(t, out.String(), "Senha: ")
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer

	tests := []struct {
		input string
		want  bool
	}{
		{"s\n", true},
		{"Sim\n", true},
		{"n\n", false},
		{"não\n", false},
		{"talvez\ns\n", true}, // reprompts until a valid answer
	}
	for _, tt := range tests {
		got, err := GetYesNo(reader(tt.input), "Permanecer conectada?", &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
