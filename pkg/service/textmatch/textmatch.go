package textmatch

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// minTokenLength drops tokens too short to carry signal
const minTokenLength = 3

// Tokenize normalizes text into lowercase alphanumeric tokens of length >= 3
func Tokenize(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) >= minTokenLength {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Similarity computes a Dice coefficient between the token sets of query and
// document: 2*|Q∩D| / (|Q|+|D|). The score is symmetric, bounded in [0, 1],
// and insensitive to document length, unlike a plain overlap count. Either
// side being empty yields 0.
func Similarity(query, document string) float64 {
	q := tokenSet(Tokenize(query))
	d := tokenSet(Tokenize(document))
	if len(q) == 0 || len(d) == 0 {
		return 0
	}

	overlap := 0
	for t := range q {
		if _, ok := d[t]; ok {
			overlap++
		}
	}

	return (2.0 * float64(overlap)) / float64(len(q)+len(d))
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
