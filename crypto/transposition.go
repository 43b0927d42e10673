package crypto

import "fmt"

// Transposition writes text row by row into a grid with key columns and reads
// it column by column. The last row is left short rather than padded, so the
// round-trip is exact for any text. Every character occupies a cell (an invalid
// UTF-8 byte counts as one). More columns than characters leave text unchanged.
type Transposition struct{}

func (Transposition) Name() string     { return "transposition" }
func (Transposition) KeyKind() KeyKind { return IntKind }

func (c Transposition) Encrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return TranspositionEncrypt(text, key.Int)
}

func (c Transposition) Decrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return TranspositionDecrypt(text, key.Int)
}

func TranspositionEncrypt(text string, columns int) (string, error) {
	if err := validateColumns(columns); err != nil {
		return "", err
	}

	units := textUnits(text)
	columns = effectiveColumns(columns, len(units))
	out := make([]string, 0, len(units))
	for col := 0; col < columns; col++ {
		for i := col; i < len(units); i += columns {
			out = append(out, units[i])
		}
	}
	return joinUnits(out, len(text)), nil
}

func TranspositionDecrypt(text string, columns int) (string, error) {
	if err := validateColumns(columns); err != nil {
		return "", err
	}

	units := textUnits(text)
	n := len(units)
	columns = effectiveColumns(columns, n)
	rows := (n + columns - 1) / columns
	// Columns before tall hold rows characters, the rest one fewer.
	tall := n % columns
	if tall == 0 {
		tall = columns
	}

	out := make([]string, n)
	next := 0
	for col := 0; col < columns; col++ {
		height := rows
		if col >= tall {
			height--
		}
		for row := 0; row < height; row++ {
			out[row*columns+col] = units[next]
			next++
		}
	}
	return joinUnits(out, len(text)), nil
}

func validateColumns(columns int) error {
	if columns < 1 {
		return fmt.Errorf("%w: transposition needs at least 1 column, got %d", ErrInvalidKey, columns)
	}
	return nil
}

// effectiveColumns caps the column count at the text length; a wider grid is a
// single short row and reads back unchanged.
func effectiveColumns(columns, n int) int {
	return min(columns, max(n, 1))
}
