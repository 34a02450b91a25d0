package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// IDCipher seals user IDs with AES-GCM so raw database IDs are never
// echoed back to clients. The key comes from process configuration
type IDCipher struct {
	aead cipher.AEAD
}

func NewIDCipher(key []byte) (*IDCipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("cipher key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &IDCipher{aead: aead}, nil
}

// Seal encrypts s and returns a URL-safe base64 string. A fresh nonce is
// generated every call and prepended to the ciphertext
func (c *IDCipher) Seal(s string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	out := c.aead.Seal(nonce, nonce, []byte(s), nil)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Open decrypts a string produced by Seal
func (c *IDCipher) Open(s string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}

	if len(raw) < c.aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]

	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}
