package services

import (
	"regexp"
	"strings"

	"songbridge/models"
)

// bracketPattern matches any parenthesized or square-bracketed segment.
var bracketPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

// extraWhitespace collapses runs of whitespace.
var extraWhitespace = regexp.MustCompile(`\s+`)

// noiseWords is the fixed noise vocabulary removed from titles, in order.
// Removal is case-insensitive substring removal, not whole-word, so the
// order matters for overlapping phrases ("official video" must come before
// "video", otherwise "official " is left behind).
var noiseWords = []string{
	"official video",
	"official music video",
	"music video",
	"video",
	"lyrics",
	"audio",
	"remaster",
	"remastered",
	"hd",
	"4k",
	"tiktok",
	"sound",
}

var noisePatterns = compileNoisePatterns()

func compileNoisePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(noiseWords))
	for i, w := range noiseWords {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(w))
	}
	return patterns
}

// CleanedTitle is the normalizer output: the derived search query plus the
// artist/track split when one could be derived.
type CleanedTitle struct {
	Query  string
	Artist string
	Track  string
}

// NormalizeTitle derives a catalog search query from raw source metadata.
// Bracketed segments and noise words are stripped, whitespace is collapsed,
// and an "Artist - Track" title is re-concatenated as "Artist Track".
// Platforms that supply an artist field directly (short-form video) get
// "artist title" as the base string before cleaning.
func NormalizeTitle(meta models.SourceMetadata) CleanedTitle {
	if strings.TrimSpace(meta.Title) == "" {
		return CleanedTitle{Artist: meta.Artist}
	}

	base := meta.Title
	if meta.Artist != "" {
		base = meta.Artist + " " + meta.Title
	}

	cleaned := bracketPattern.ReplaceAllString(base, "")
	for _, p := range noisePatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(extraWhitespace.ReplaceAllString(cleaned, " "))

	if parts := strings.Split(cleaned, " - "); len(parts) > 1 {
		artist := strings.TrimSpace(parts[0])
		track := strings.TrimSpace(strings.Join(parts[1:], " "))
		if artist != "" && track != "" {
			return CleanedTitle{
				Query:  artist + " " + track,
				Artist: artist,
				Track:  track,
			}
		}
	}

	return CleanedTitle{
		Query:  cleaned,
		Artist: meta.Artist,
		Track:  cleaned,
	}
}
