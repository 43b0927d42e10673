package crypto

import "fmt"

// RailFence writes text along a zig-zag over a number of rails and reads it
// back rail by rail. Every character occupies a position (an invalid UTF-8 byte
// counts as one), so round-trips are exact.
type RailFence struct{}

func (RailFence) Name() string     { return "railfence" }
func (RailFence) KeyKind() KeyKind { return IntKind }

func (c RailFence) Encrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return RailFenceEncrypt(text, key.Int)
}

func (c RailFence) Decrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return RailFenceDecrypt(text, key.Int)
}

func RailFenceEncrypt(text string, rails int) (string, error) {
	if err := validateRails(rails); err != nil {
		return "", err
	}

	units := textUnits(text)
	rails = effectiveRails(rails, len(units))
	rows := make([][]string, rails)
	for i, row := range railPattern(len(units), rails) {
		rows[row] = append(rows[row], units[i])
	}

	out := make([]string, 0, len(units))
	for _, row := range rows {
		out = append(out, row...)
	}
	return joinUnits(out, len(text)), nil
}

func RailFenceDecrypt(text string, rails int) (string, error) {
	if err := validateRails(rails); err != nil {
		return "", err
	}

	units := textUnits(text)
	rails = effectiveRails(rails, len(units))
	pattern := railPattern(len(units), rails)

	// Each rail owns a contiguous block of the ciphertext; next[r] walks it.
	next := make([]int, rails)
	for _, row := range pattern {
		next[row]++
	}
	offset := 0
	for row, count := range next {
		next[row] = offset
		offset += count
	}

	out := make([]string, len(units))
	for i, row := range pattern {
		out[i] = units[next[row]]
		next[row]++
	}
	return joinUnits(out, len(text)), nil
}

func validateRails(rails int) error {
	if rails < 2 {
		return fmt.Errorf("%w: rail fence needs at least 2 rails, got %d", ErrInvalidKey, rails)
	}
	return nil
}

// effectiveRails caps the rail count at the text length. Past that point every
// character already has a rail of its own and the zig-zag never turns.
func effectiveRails(rails, n int) int {
	return min(rails, max(n, 2))
}

// railPattern returns the rail of each of n positions: 0,1,..,rails-1,rails-2,..,1,0,1,...
func railPattern(n, rails int) []int {
	cycle := 2 * (rails - 1)
	pattern := make([]int, n)
	for i := range pattern {
		pos := i % cycle
		if pos < rails {
			pattern[i] = pos
		} else {
			pattern[i] = cycle - pos
		}
	}
	return pattern
}
