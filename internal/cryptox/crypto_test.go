package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	plaintext := []byte(`{"nome":"Ana","senha":"Abc12345!"}`)

	boxed, err := Seal(plaintext, key)
	require.NoError(t, err)
	require.NotContains(t, string(boxed), "Abc12345!")

	got, err := Open(boxed, key)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestSeal_NoncesDiffer(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	a, err := Seal([]byte("x"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("x"), key)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestOpen_TamperedBlob(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	boxed, err := Seal([]byte("secret"), key)
	require.NoError(t, err)
	boxed[len(boxed)-1] ^= 0xFF

	_, err = Open(boxed, key)
	require.ErrorIs(t, err, ErrCorruptBlob)
}

func TestOpen_TooShort(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	_, err = Open([]byte{1, 2, 3}, key)
	require.ErrorIs(t, err, ErrCorruptBlob)
}

func TestOpen_WrongKey(t *testing.T) {
	key1, err := GenerateKey()
	require.NoError(t, err)
	key2, err := GenerateKey()
	require.NoError(t, err)

	boxed, err := Seal([]byte("secret"), key1)
	require.NoError(t, err)

	_, err = Open(boxed, key2)
	require.ErrorIs(t, err, ErrCorruptBlob)
}
