package services

import "strings"

// tokenSeparators are replaced with spaces before tokenizing.
const tokenSeparators = "()[]-_,.:/!"

// tokenSet lowercases s, replaces separator characters with spaces, and
// splits into a set of unique tokens. Empty tokens are dropped.
func tokenSet(s string) map[string]struct{} {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(tokenSeparators, r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}

	set := make(map[string]struct{})
	for _, tok := range strings.Fields(b.String()) {
		set[tok] = struct{}{}
	}
	return set
}

// TokenSetSimilarity returns the Jaccard ratio between the token sets of
// two free-text strings: |intersection| / |union|, in [0,1]. Returns 0
// when either string normalizes to an empty token set.
func TokenSetSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// MismatchPenalty returns the heuristic penalty to subtract from a raw
// similarity score: 0.1 when exactly one of the strings mentions "live",
// plus a further 0.1 when the strings disagree on being a remix/mix.
// The caller is responsible for flooring the adjusted score at 0.
func MismatchPenalty(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	penalty := 0.0
	if strings.Contains(a, "live") != strings.Contains(b, "live") {
		penalty += 0.1
	}
	if hasRemix(a) != hasRemix(b) {
		penalty += 0.1
	}
	return penalty
}

func hasRemix(s string) bool {
	return strings.Contains(s, "remix") || strings.Contains(s, "mix")
}
