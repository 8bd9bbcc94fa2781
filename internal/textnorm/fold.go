package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a dish title to the form used for display and dedup.
type Normalizer func(string) string

// FoldFrench folds the French/Latin-1 subset of UTF-8 down to 7-bit ASCII:
// accented vowels and cedillas lose their diacritics, Œ/œ expand to OE/oe,
// and the curly apostrophe becomes '. Anything it does not recognize passes
// through byte for byte, so garbled input never fails.
func FoldFrench(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0xC3 {
			out.WriteByte(c)
			continue
		}

		if c == 0xC3 && i+1 < len(s) {
			d := s[i+1]
			switch {
			case d >= 0xA0 && d <= 0xA5: // àáâãäå
				out.WriteByte('a')
			case d == 0xA7: // ç
				out.WriteByte('c')
			case d >= 0xA8 && d <= 0xAB: // èéêë
				out.WriteByte('e')
			case d >= 0xAC && d <= 0xAF: // ìíîï
				out.WriteByte('i')
			case d >= 0xB2 && d <= 0xB6: // òóôõö
				out.WriteByte('o')
			case d >= 0xB9 && d <= 0xBC: // ùúûü
				out.WriteByte('u')
			case d == 0xBF: // ÿ
				out.WriteByte('y')
			case d >= 0x80 && d <= 0x85: // ÀÁÂÃÄÅ
				out.WriteByte('A')
			case d == 0x87: // Ç
				out.WriteByte('C')
			case d >= 0x88 && d <= 0x8B: // ÈÉÊË
				out.WriteByte('E')
			case d >= 0x8C && d <= 0x8F: // ÌÍÎÏ
				out.WriteByte('I')
			case d >= 0x92 && d <= 0x96: // ÒÓÔÕÖ
				out.WriteByte('O')
			case d >= 0x99 && d <= 0x9C: // ÙÚÛÜ
				out.WriteByte('U')
			default:
				out.WriteByte(c)
				out.WriteByte(d)
			}
			i++
			continue
		}

		if c == 0xC5 && i+1 < len(s) {
			switch s[i+1] {
			case 0x92:
				out.WriteString("OE")
				i++
				continue
			case 0x93:
				out.WriteString("oe")
				i++
				continue
			case 0xB8: // Ÿ
				out.WriteByte('Y')
				i++
				continue
			}
		}

		// U+2019 right single quotation mark
		if c == 0xE2 && i+2 < len(s) && s[i+1] == 0x80 && s[i+2] == 0x99 {
			out.WriteByte('\'')
			i += 2
			continue
		}

		out.WriteByte(c)
	}
	return out.String()
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldUnicode strips all combining marks, covering scripts the French table
// does not. Ligatures are left alone.
func FoldUnicode(s string) string {
	result, _, _ := transform.String(stripAccents, s)
	return result
}

// FoldNone returns the title unchanged.
func FoldNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Default is french_table.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case "french_table":
		return FoldFrench
	case "unicode":
		return FoldUnicode
	case "none":
		return FoldNone
	default:
		return FoldFrench
	}
}
