package crypto

// Caesar shifts every ASCII letter by a fixed amount. Other runes are kept.
type Caesar struct{}

func (Caesar) Name() string     { return "caesar" }
func (Caesar) KeyKind() KeyKind { return IntKind }

func (c Caesar) Encrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return CaesarEncrypt(text, key.Int), nil
}

func (c Caesar) Decrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return CaesarDecrypt(text, key.Int), nil
}

// NormalizeShift maps any integer shift into [0, 26).
func NormalizeShift(shift int) int {
	return ((shift % 26) + 26) % 26
}

func CaesarEncrypt(text string, shift int) string {
	return caesarShift(text, NormalizeShift(shift))
}

func CaesarDecrypt(text string, shift int) string {
	return caesarShift(text, NormalizeShift(-NormalizeShift(shift)))
}

// caesarShift works on bytes: only ASCII letters change, so any other byte,
// valid UTF-8 or not, is copied as is.
func caesarShift(text string, shift int) string {
	out := []byte(text)
	for i, b := range out {
		if isLetter(b) {
			out[i] = shiftLetter(b, shift)
		}
	}
	return string(out)
}
