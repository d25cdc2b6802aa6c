// Package cryptox seals small local blobs (the registration draft) at rest.
// The draft holds a password typed by the user, so it never touches disk in
// plaintext: it is encrypted with XChaCha20-Poly1305 under a random
// per-device key kept in the local metadata store.
package cryptox

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

const KeySize = chacha20poly1305.KeySize

var ErrCorruptBlob = errors.New("corrupt sealed blob")

// GenerateKey returns a fresh random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal encrypts plaintext with the given key. The random nonce is prepended
// to the returned ciphertext.
func Seal(plaintext, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal. Returns ErrCorruptBlob when the
// blob is too short or fails authentication.
func Open(boxed, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	if len(boxed) < aead.NonceSize() {
		return nil, ErrCorruptBlob
	}

	nonce, ciphertext := boxed[:aead.NonceSize()], boxed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrCorruptBlob
	}
	return plaintext, nil
}
