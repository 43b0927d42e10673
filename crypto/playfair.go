package crypto

import "strings"

const (
	playfairSize   = 5
	playfairFiller = 'X'
	// playfairAltFiller pads an X, where X itself would be ambiguous.
	playfairAltFiller = 'Z'
)

// Playfair substitutes letter pairs using a 5x5 key square with J merged into I.
// Non-letters are dropped and output is upper case. Decrypt keeps filler letters.
type Playfair struct{}

func (Playfair) Name() string     { return "playfair" }
func (Playfair) KeyKind() KeyKind { return StringKind }

func (c Playfair) Encrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return NewPlayfairMatrix(key.Text).Encrypt(text), nil
}

func (c Playfair) Decrypt(text string, key Key) (string, error) {
	if err := expectKind(c, key); err != nil {
		return "", err
	}
	return NewPlayfairMatrix(key.Text).Decrypt(text), nil
}

type cell struct {
	row, col int
}

// PlayfairMatrix is an immutable key square.
type PlayfairMatrix struct {
	grid [playfairSize][playfairSize]byte
	pos  [26]cell
}

// NewPlayfairMatrix lays out the keyword's distinct letters followed by the rest
// of the alphabet, row by row. The same keyword always yields the same square.
func NewPlayfairMatrix(keyword string) *PlayfairMatrix {
	m := &PlayfairMatrix{}
	var seen [26]bool
	n := 0
	place := func(b byte) {
		if seen[b-'A'] {
			return
		}
		seen[b-'A'] = true
		c := cell{row: n / playfairSize, col: n % playfairSize}
		m.grid[c.row][c.col] = b
		m.pos[b-'A'] = c
		n++
	}

	for _, b := range playfairLetters(keyword) {
		place(b)
	}
	for b := byte('A'); b <= 'Z'; b++ {
		if b != 'J' {
			place(b)
		}
	}
	m.pos['J'-'A'] = m.pos['I'-'A']
	return m
}

// Grid returns a copy of the square.
func (m *PlayfairMatrix) Grid() [playfairSize][playfairSize]byte {
	return m.grid
}

func (m *PlayfairMatrix) String() string {
	var sb strings.Builder
	for r, row := range m.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, b := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

func (m *PlayfairMatrix) Encrypt(text string) string {
	return m.transform(playfairDigraphs(playfairLetters(text), true), 1)
}

func (m *PlayfairMatrix) Decrypt(text string) string {
	return m.transform(playfairDigraphs(playfairLetters(text), false), playfairSize-1)
}

func (m *PlayfairMatrix) transform(pairs [][2]byte, step int) string {
	out := make([]byte, 0, 2*len(pairs))
	for _, p := range pairs {
		a, b := m.pos[p[0]-'A'], m.pos[p[1]-'A']
		switch {
		case a.row == b.row:
			a.col = (a.col + step) % playfairSize
			b.col = (b.col + step) % playfairSize
		case a.col == b.col:
			a.row = (a.row + step) % playfairSize
			b.row = (b.row + step) % playfairSize
		default:
			a.col, b.col = b.col, a.col
		}
		out = append(out, m.grid[a.row][a.col], m.grid[b.row][b.col])
	}
	return string(out)
}

// playfairLetters keeps ASCII letters, upper-cased, with J folded into I.
func playfairLetters(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if b < 'A' || b > 'Z' {
			continue
		}
		if b == 'J' {
			b = 'I'
		}
		out = append(out, b)
	}
	return out
}

// playfairDigraphs splits letters into pairs. With splitDoubles a repeated
// letter inside a pair gets a filler and the scan resumes at the second letter.
// An odd tail is always padded.
func playfairDigraphs(letters []byte, splitDoubles bool) [][2]byte {
	pairs := make([][2]byte, 0, len(letters)/2+1)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) || (splitDoubles && letters[i+1] == a) {
			pairs = append(pairs, [2]byte{a, playfairFillerFor(a)})
			i++
			continue
		}
		pairs = append(pairs, [2]byte{a, letters[i+1]})
		i += 2
	}
	return pairs
}

func playfairFillerFor(b byte) byte {
	if b == playfairFiller {
		return playfairAltFiller
	}
	return playfairFiller
}
