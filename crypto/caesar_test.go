package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCaesar(t *testing.T) {
	tests := []struct {
		name   string
		plain  string
		shift  int
		cipher string
	}{
		{"classic", "HELLO", 3, "KHOOR"},
		{"mixed case and punctuation", "Hello, World!", 3, "Khoor, Zruog!"},
		{"wraps", "xyz XYZ", 3, "abc ABC"},
		{"negative shift", "abc", -1, "zab"},
		{"shift beyond alphabet", "HELLO", 29, "KHOOR"},
		{"zero shift", "Same", 0, "Same"},
		{"non ascii untouched", "héllo 123", 1, "iémmp 123"},
		{"invalid utf8 kept byte for byte", "ab\xffcd", 3, "de\xfffg"},
		{"empty", "", 7, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cipher, CaesarEncrypt(tt.plain, tt.shift))
			assert.Equal(t, tt.plain, CaesarDecrypt(tt.cipher, tt.shift))
		})
	}
}

func TestNormalizeShift(t *testing.T) {
	assert.Equal(t, 0, NormalizeShift(26))
	assert.Equal(t, 25, NormalizeShift(-1))
	assert.Equal(t, 1, NormalizeShift(-51))
	assert.Equal(t, 3, NormalizeShift(3))
}

func TestCaesarProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := string(rapid.SliceOf(rapid.Byte()).Draw(t, "text"))
		shift := rapid.IntRange(-10000, 10000).Draw(t, "shift")
		n := rapid.IntRange(-100, 100).Draw(t, "n")

		encrypted := CaesarEncrypt(text, shift)
		assert.Equal(t, text, CaesarDecrypt(encrypted, shift))
		assert.Equal(t, encrypted, CaesarEncrypt(text, shift+26*n))
	})
}
