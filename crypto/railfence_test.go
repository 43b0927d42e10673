package crypto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRailFence(t *testing.T) {
	tests := []struct {
		name   string
		plain  string
		rails  int
		cipher string
	}{
		{"classic three rails", "WEAREDISCOVEREDFLEEATONCE", 3, "WECRLTEERDSOEEFEAOCAIVDEN"},
		{"two rails", "HELLO", 2, "HLOEL"},
		{"spaces occupy rails", "AB CD", 2, "A DBC"},
		{"more rails than text", "HI", 5, "HI"},
		{"rails equal to length", "HELLO", 5, "HELLO"},
		{"huge rail count", "HELLO", math.MaxInt, "HELLO"},
		{"huge rail count on one character", "H", 1 << 40, "H"},
		{"invalid utf8 occupies one position", "a\xffbc", 2, "ab\xffc"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RailFenceEncrypt(tt.plain, tt.rails)
			require.NoError(t, err)
			assert.Equal(t, tt.cipher, got)

			back, err := RailFenceDecrypt(tt.cipher, tt.rails)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, back)
		})
	}
}

func TestRailFence_InvalidRails(t *testing.T) {
	for _, rails := range []int{1, 0, -3} {
		_, err := RailFenceEncrypt("WEAREDISCOVERED", rails)
		assert.ErrorIs(t, err, ErrInvalidKey, "rails %d", rails)

		_, err = RailFenceDecrypt("WEAREDISCOVERED", rails)
		assert.ErrorIs(t, err, ErrInvalidKey, "rails %d", rails)
	}
}

func TestEffectiveRails(t *testing.T) {
	assert.Equal(t, 3, effectiveRails(3, 25))
	assert.Equal(t, 5, effectiveRails(math.MaxInt, 5))
	assert.Equal(t, 2, effectiveRails(math.MaxInt, 0))
	assert.Equal(t, 2, effectiveRails(1<<40, 1))
}

func TestRailPattern(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1, 0, 1, 2}, railPattern(9, 4))
	assert.Equal(t, []int{0, 1, 0, 1}, railPattern(4, 2))
}

func TestRailFenceRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := string(rapid.SliceOf(rapid.Byte()).Draw(t, "text"))
		rails := rapid.OneOf(rapid.IntRange(2, 40), rapid.IntRange(2, math.MaxInt)).Draw(t, "rails")

		encrypted, err := RailFenceEncrypt(text, rails)
		require.NoError(t, err)
		decrypted, err := RailFenceDecrypt(encrypted, rails)
		require.NoError(t, err)
		assert.Equal(t, text, decrypted)
	})
}
