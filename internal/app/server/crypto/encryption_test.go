package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	c, err := NewCipher(key)
	require.NoError(t, err)
	return c
}

func TestCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	for _, text := range []string{"secret", "", "Секретные данные", strings.Repeat("x", 4096)} {
		token, err := c.Encrypt([]byte(text))
		require.NoError(t, err)
		if text != "" {
			assert.NotContains(t, token, text)
		}

		plain, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, text, string(plain))
	}
}

func TestCipher_RandomNonce(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)
	second, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipher_Tampered(t *testing.T) {
	c := newTestCipher(t)

	token, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	// flip one bit in every byte past the version, one at a time
	for i := 1; i < len(raw); i++ {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01

		plain, err := c.Decrypt(base64.RawURLEncoding.EncodeToString(tampered))
		assert.ErrorIs(t, err, ErrIntegrity, "byte %d", i)
		assert.Nil(t, plain)
	}
}

func TestCipher_ForeignKey(t *testing.T) {
	writer := newTestCipher(t)
	reader := newTestCipher(t)

	token, err := writer.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = reader.Decrypt(token)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestCipher_Malformed(t *testing.T) {
	c := newTestCipher(t)

	token, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	wrongVersion := append([]byte{0x81}, raw[1:]...)

	tests := map[string]string{
		"not base64":    "!!!not-base64!!!",
		"empty":         "",
		"too short":     base64.RawURLEncoding.EncodeToString([]byte{version, 1, 2, 3}),
		"wrong version": base64.RawURLEncoding.EncodeToString(wrongVersion),
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decrypt(input)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestParseKey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	parsed, err := ParseKey(hex.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	_, err = ParseKey("abcd")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = ParseKey("zz")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewCipher([]byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}
