// Package similarity implements word n-gram Jaccard similarity between
// text spans.
package similarity

import "strings"

// NGrams builds the set of contiguous n-word sequences from words,
// each joined by a single space. Returns an empty set when fewer than
// n words are available.
func NGrams(words []string, n int) map[string]struct{} {
	grams := make(map[string]struct{})
	if n <= 0 || len(words) < n {
		return grams
	}
	for i := 0; i+n <= len(words); i++ {
		grams[strings.Join(words[i:i+n], " ")] = struct{}{}
	}
	return grams
}

// Jaccard computes |A∩B| / |A∪B| over two n-gram sets.
// Defined as 0 when either set is empty. Symmetric by construction.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller set for the intersection
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	intersection := 0
	for gram := range small {
		if _, ok := large[gram]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
