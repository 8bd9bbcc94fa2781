package web

import "strings"

// macroReplace substitutes $name$ markers against a string map, the page
// format the sign firmware uses. Markers with no mapping and unterminated
// markers are left in place.
func macroReplace(tmpl string, vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for {
		i := strings.IndexByte(tmpl, '$')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		j := strings.IndexByte(tmpl[i+1:], '$')
		if j < 0 {
			b.WriteString(tmpl)
			return b.String()
		}

		name := tmpl[i+1 : i+1+j]
		if v, ok := vars[name]; ok {
			b.WriteString(tmpl[:i])
			b.WriteString(v)
		} else {
			b.WriteString(tmpl[:i+1+j+1])
		}
		tmpl = tmpl[i+1+j+1:]
	}
}
