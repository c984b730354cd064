package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	KeySize = 32

	version   byte = 0x80
	nonceSize      = 12
	tagSize        = 16
)

var (
	ErrIntegrity      = errors.New("ciphertext failed integrity check")
	ErrMalformedToken = errors.New("ciphertext token is malformed")
	ErrInvalidKey     = errors.New("encryption key must be 32 bytes")
)

// Cipher encrypts blog content at rest with AES-256-GCM.
//
// A token is base64url(version | nonce | ciphertext | tag). The key lives only
// in memory; content written under one key is unreadable under any other.
type Cipher struct {
	aead cipher.AEAD
}

// GenerateKey returns a fresh random key for a single process lifetime.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// ParseKey decodes a hex encoded key as supplied through configuration.
func ParseKey(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	return key, nil
}

func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Cipher{aead: gcm}, nil
}

// Encrypt encrypts data using AES-256-GCM
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	buf := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+tagSize)
	buf[0] = version
	nonce := buf[1 : 1+nonceSize]
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// the version byte is authenticated as associated data
	sealed := c.aead.Seal(buf, nonce, plaintext, buf[:1])
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt decrypts data encrypted with Encrypt
func (c *Cipher) Decrypt(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if len(raw) < 1+nonceSize+tagSize {
		return nil, fmt.Errorf("%w: token too short", ErrMalformedToken)
	}
	if raw[0] != version {
		return nil, fmt.Errorf("%w: unknown version 0x%02x", ErrMalformedToken, raw[0])
	}

	nonce, ciphertext := raw[1:1+nonceSize], raw[1+nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, raw[:1])
	if err != nil {
		return nil, ErrIntegrity
	}

	return plaintext, nil
}
