package services

import "math"

// AggregateConfidence combines the per-catalog match scores into one
// confidence value in [0,100]. When both catalogs produced a match Spotify
// is weighted 0.6 and Apple 0.4; a single match contributes its score
// unweighted. NaN maps to 0.
func AggregateConfidence(spotifyScore, appleScore float64) int {
	var raw float64
	switch {
	case spotifyScore > 0 && appleScore > 0:
		raw = spotifyScore*0.6 + appleScore*0.4
	case spotifyScore > 0:
		raw = spotifyScore
	case appleScore > 0:
		raw = appleScore
	}

	if math.IsNaN(raw) {
		return 0
	}

	confidence := int(math.Round(raw * 100))
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

// MatchLabel maps a confidence value to its categorical label.
// Lower bounds are inclusive at each tier.
func MatchLabel(confidence int) string {
	switch {
	case confidence >= 90:
		return "exact"
	case confidence >= 75:
		return "high"
	case confidence >= 50:
		return "medium"
	case confidence >= 25:
		return "low"
	default:
		return "very_low"
	}
}
