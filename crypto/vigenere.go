// Package crypto contains the classical text ciphers: Caesar, Vigenère,
// Rail Fence, Playfair and columnar Transposition.
//
// None of them is secure. Only ASCII letters count as alphabetic; how each
// cipher treats everything else is documented on its type.
package crypto

import "fmt"

// Vigenere shifts each letter by the matching letter of a repeating keyword.
// Non-letters pass through and do not advance the keyword.
type Vigenere struct{}

func (Vigenere) Name() string     { return "vigenere" }
func (Vigenere) KeyKind() KeyKind { return StringKind }

func (v Vigenere) Encrypt(text string, key Key) (string, error) {
	if err := expectKind(v, key); err != nil {
		return "", err
	}
	return VigenereEncrypt(text, key.Text)
}

func (v Vigenere) Decrypt(text string, key Key) (string, error) {
	if err := expectKind(v, key); err != nil {
		return "", err
	}
	return VigenereDecrypt(text, key.Text)
}

func VigenereEncrypt(text, keyword string) (string, error) {
	shifts, err := vigenereShifts(keyword)
	if err != nil {
		return "", err
	}
	return vigenereApply(text, shifts, 1), nil
}

func VigenereDecrypt(text, keyword string) (string, error) {
	shifts, err := vigenereShifts(keyword)
	if err != nil {
		return "", err
	}
	return vigenereApply(text, shifts, -1), nil
}

// vigenereShifts returns the keyword as shifts A=0..Z=25, ignoring non-letters.
func vigenereShifts(keyword string) ([]int, error) {
	shifts := make([]int, 0, len(keyword))
	for i := 0; i < len(keyword); i++ {
		switch b := keyword[i]; {
		case isUpper(b):
			shifts = append(shifts, int(b-'A'))
		case isLower(b):
			shifts = append(shifts, int(b-'a'))
		}
	}
	if len(shifts) == 0 {
		return nil, fmt.Errorf("%w: vigenere keyword %q contains no letters", ErrInvalidKey, keyword)
	}
	return shifts, nil
}

func vigenereApply(text string, shifts []int, direction int) string {
	out := []byte(text)
	cursor := 0
	for i, b := range out {
		if !isLetter(b) {
			continue
		}
		out[i] = shiftLetter(b, NormalizeShift(direction*shifts[cursor%len(shifts)]))
		cursor++
	}
	return string(out)
}
