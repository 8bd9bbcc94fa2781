package textnorm

import "strings"

// DefaultMaxWords is the key-phrase length used for display lines.
const DefaultMaxWords = 4

// stopwords contribute nothing to a key-phrase: French and English function
// words plus menu-filler descriptors that carry no dish identity.
var stopwords = map[string]struct{}{}

// elisions are stopwords glued to the next word by an apostrophe
// ("d'artichaut"). They are stripped as prefixes.
var elisions = []string{"d'", "l'"}

func init() {
	for _, w := range []string{
		"aux", "de", "et", "avec", "à", "le", "la", "du", "des", "en",
		"au", "sur", "pour", "les", "un", "une", "deux", "trois", "quatre",
		"d'", "l'",
		"with", "and", "of", "in", "for", "the", "to", "on", "at", "from",
		"by", "an", "a", "one", "two", "three", "four",
		"fresh", "old fashioned", "organic", "mature", "traditional",
		"natural", "style", "sliced", "drenched",
	} {
		stopwords[w] = struct{}{}
	}
}

func isStopword(w string) bool {
	_, ok := stopwords[strings.ToLower(w)]
	return ok
}

// cleanToken drops list punctuation and turns slashes and hyphens into
// spaces, so "boeuf/porc" and "mi-cuit" split into separate words.
func cleanToken(tok string) string {
	var b strings.Builder
	b.Grow(len(tok))
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case ',', '.', ';', '&', ':', '(', ')':
		case '/', '-':
			b.WriteByte(' ')
		default:
			b.WriteByte(tok[i])
		}
	}
	return b.String()
}

func stripElision(w string) string {
	lower := strings.ToLower(w)
	for _, e := range elisions {
		if len(w) > len(e) && strings.HasPrefix(lower, e) {
			return w[len(e):]
		}
	}
	return w
}

// KeyPhrase distills a normalized dish title to at most max content words,
// preserving input order. Stopwords and punctuation fall away; the result is
// the dedup key and the displayed token.
func KeyPhrase(title string, max int) string {
	if max <= 0 {
		max = DefaultMaxWords
	}

	var words []string
	for _, raw := range strings.Split(title, " ") {
		if len(words) >= max {
			break
		}
		for _, w := range strings.Fields(cleanToken(strings.TrimSpace(raw))) {
			if len(words) >= max {
				break
			}
			w = stripElision(w)
			if w == "" || isStopword(w) {
				continue
			}
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}
