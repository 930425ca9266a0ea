package services

import (
	"strings"

	"songbridge/models"
)

// SelectBestMatch scores every candidate against the query and returns the
// highest-scoring one. Ties keep the first-seen candidate, which preserves
// the catalog's own ranking. An empty candidate list yields a zero result
// without invoking the scorer.
func SelectBestMatch(query string, candidates []models.Candidate) models.MatchResult {
	if len(candidates) == 0 {
		return models.MatchResult{}
	}

	var best models.MatchResult
	first := true
	for _, c := range dedupeCandidates(candidates) {
		combined := combinedName(c)
		score := TokenSetSimilarity(query, combined) - MismatchPenalty(query, combined)
		if score < 0 {
			score = 0
		}
		if first || score > best.Score {
			best = models.MatchResult{URL: c.URL, Score: score}
			first = false
		}
	}
	return best
}

func combinedName(c models.Candidate) string {
	return strings.TrimSpace(strings.Join(c.Artists, " ") + " " + c.Title)
}

// dedupeCandidates collapses exact duplicates (the same track listed twice,
// compared case-insensitively on the combined artist+title string). Only
// identical names collapse: near-miss names can be genuinely distinct
// tracks, and every distinct candidate must reach the scorer. The first
// occurrence is kept; order is otherwise preserved.
func dedupeCandidates(candidates []models.Candidate) []models.Candidate {
	out := make([]models.Candidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		name := strings.ToLower(combinedName(c))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, c)
	}
	return out
}
