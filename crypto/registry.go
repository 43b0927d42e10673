package crypto

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// KeyKind is the semantic type a cipher expects its key to have.
type KeyKind int

const (
	IntKind KeyKind = iota
	StringKind
)

func (k KeyKind) String() string {
	switch k {
	case IntKind:
		return "integer"
	case StringKind:
		return "string"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

// Key carries either an integer or a string key.
type Key struct {
	Kind KeyKind
	Int  int
	Text string
}

func IntKey(n int) Key {
	return Key{Kind: IntKind, Int: n}
}

func StringKey(s string) Key {
	return Key{Kind: StringKind, Text: s}
}

// Cipher is a stateless encrypt/decrypt pair. Implementations are safe for
// concurrent use.
type Cipher interface {
	Name() string
	KeyKind() KeyKind
	Encrypt(text string, key Key) (string, error)
	Decrypt(text string, key Key) (string, error)
}

var ciphers = map[string]Cipher{}

func register(c Cipher) {
	if _, exists := ciphers[c.Name()]; exists {
		panic(fmt.Sprintf("cipher %s is already registered", c.Name()))
	}
	ciphers[c.Name()] = c
}

func init() {
	register(Caesar{})
	register(Vigenere{})
	register(RailFence{})
	register(Playfair{})
	register(Transposition{})
}

// Lookup returns the registered cipher with the given name.
func Lookup(name string) (Cipher, bool) {
	c, ok := ciphers[name]
	return c, ok
}

// All returns every registered cipher sorted by name.
func All() []Cipher {
	out := make([]Cipher, 0, len(ciphers))
	for _, c := range ciphers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func expectKind(c Cipher, key Key) error {
	if key.Kind != c.KeyKind() {
		return fmt.Errorf("%w: %s expects a %s key, got %s", ErrInvalidKey, c.Name(), c.KeyKind(), key.Kind)
	}
	return nil
}

func isUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isLetter(b byte) bool { return isUpper(b) || isLower(b) }

// shiftLetter rotates an ASCII letter by shift (already in [0,26)) keeping case.
func shiftLetter(b byte, shift int) byte {
	base := byte('a')
	if isUpper(b) {
		base = 'A'
	}
	return base + (b-base+byte(shift))%26
}

// textUnits splits s into characters: whole UTF-8 sequences, or single bytes
// where the encoding is invalid. Joining the units gives back s exactly.
func textUnits(s string) []string {
	units := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		units = append(units, s[:size])
		s = s[size:]
	}
	return units
}

func joinUnits(units []string, size int) string {
	var sb strings.Builder
	sb.Grow(size)
	for _, u := range units {
		sb.WriteString(u)
	}
	return sb.String()
}
