package detect

import "regexp"

// citationPattern matches inline citations: author-year like "(Smith, 2020)"
// or numbered like "[3]".
var citationPattern = regexp.MustCompile(`\([A-Z][^)]*,\s*\d{4}\)|\[\d+\]`)

// hasCitation reports whether the span contains an inline citation marker
func hasCitation(span string) bool {
	return citationPattern.MatchString(span)
}
