package models

// Platform identifies the source video platform of a submitted link.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTikTok  Platform = "tiktok"
	PlatformUnknown Platform = "unknown"
)

// SourceMetadata is the title metadata fetched once per request from the
// source platform's oEmbed endpoint. Immutable after creation.
type SourceMetadata struct {
	Platform Platform
	Title    string
	Artist   string
}

// Candidate is one search result returned by a catalog client.
// URL is the canonical track URL on that catalog, empty when the catalog
// does not expose one.
type Candidate struct {
	Title   string
	Artists []string
	URL     string
}

// MatchResult is the best-scoring candidate for one catalog.
// URL is empty and Score is exactly 0 when the catalog returned no candidates.
type MatchResult struct {
	URL   string
	Score float64
}

// DebugScores carries the raw per-catalog match scores. Optional extension
// of the response contract, not a stable API.
type DebugScores struct {
	SpotifyScore    float64 `json:"spotifyScore"`
	AppleScore      float64 `json:"appleScore"`
	SoundCloudScore float64 `json:"soundCloudScore"`
}

// ConversionResult is the final response payload for one conversion.
type ConversionResult struct {
	SourceTitle   string       `json:"sourceTitle"`
	CleanedQuery  string       `json:"cleanedQuery"`
	Platform      Platform     `json:"platform"`
	Artist        string       `json:"artist,omitempty"`
	Song          string       `json:"song,omitempty"`
	Confidence    int          `json:"confidence"`
	MatchType     string       `json:"matchType"`
	SpotifyURL    string       `json:"spotifyUrl"`
	AppleMusicURL string       `json:"appleMusicUrl"`
	SoundCloudURL string       `json:"soundCloudUrl"`
	Debug         *DebugScores `json:"debug,omitempty"`
}
