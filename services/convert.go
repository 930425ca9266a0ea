package services

import (
	"context"
	"log"
	"sync"

	"songbridge/applemusic"
	"songbridge/config"
	"songbridge/metadata"
	"songbridge/models"
	"songbridge/soundcloud"
	"songbridge/spotify"
)

// MetadataFetcher resolves a media link to its source title metadata.
type MetadataFetcher interface {
	Fetch(ctx context.Context, link string) (models.SourceMetadata, error)
}

// CatalogSearcher is one outbound catalog search. Implementations must cap
// their result list; failures are degraded to "no candidates" by the caller.
type CatalogSearcher interface {
	SearchTracks(ctx context.Context, query string) ([]models.Candidate, error)
}

// ConvertService turns a media link into per-catalog track links with a
// confidence score. Catalog searchers may be nil, in which case that
// catalog contributes nothing.
type ConvertService struct {
	source     MetadataFetcher
	spotify    CatalogSearcher
	apple      CatalogSearcher
	soundcloud CatalogSearcher
}

func NewConvertService(source MetadataFetcher, spotifySearch, appleSearch, soundcloudSearch CatalogSearcher) *ConvertService {
	return &ConvertService{
		source:     source,
		spotify:    spotifySearch,
		apple:      appleSearch,
		soundcloud: soundcloudSearch,
	}
}

// NewDefaultConvertService wires the production clients from configuration.
// The Spotify and SoundCloud searchers stay nil when their credentials are
// absent, so those branches degrade instead of failing the request.
func NewDefaultConvertService() *ConvertService {
	var spotifySearch CatalogSearcher
	if c := spotify.NewClient(config.Spotify.ClientID, config.Spotify.ClientSecret); c != nil {
		spotifySearch = c
	} else {
		log.Println("Warning: Spotify credentials not configured, Spotify matching disabled")
	}

	var soundcloudSearch CatalogSearcher
	if c := soundcloud.NewClient(config.SoundCloud.ClientID); c != nil {
		soundcloudSearch = c
	}

	return NewConvertService(metadata.NewClient(), spotifySearch, applemusic.NewClient(), soundcloudSearch)
}

// Convert fetches source metadata, derives the search query, fans out to
// the catalogs concurrently, and shapes the final result. Only the
// metadata fetch can fail the request; catalog failures are logged and
// treated as empty candidate lists.
func (s *ConvertService) Convert(ctx context.Context, link string) (*models.ConversionResult, error) {
	meta, err := s.source.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	cleaned := NormalizeTitle(meta)

	spotifyMatch, appleMatch, soundcloudMatch := s.searchAll(ctx, cleaned.Query)

	confidence := AggregateConfidence(spotifyMatch.Score, appleMatch.Score)

	result := &models.ConversionResult{
		SourceTitle:   meta.Title,
		CleanedQuery:  cleaned.Query,
		Platform:      meta.Platform,
		Artist:        cleaned.Artist,
		Song:          cleaned.Track,
		Confidence:    confidence,
		MatchType:     MatchLabel(confidence),
		SpotifyURL:    exposedLink(spotifyMatch, confidence, spotify.SearchPageURL(cleaned.Query)),
		AppleMusicURL: exposedLink(appleMatch, confidence, applemusic.SearchPageURL(cleaned.Query)),
		SoundCloudURL: soundcloud.SearchPageURL(cleaned.Query),
		Debug: &models.DebugScores{
			SpotifyScore:    spotifyMatch.Score,
			AppleScore:      appleMatch.Score,
			SoundCloudScore: soundcloudMatch.Score,
		},
	}
	return result, nil
}

// searchAll issues the catalog searches concurrently and waits for all of
// them to settle. Each branch has its own result slot and timeout, so a
// slow or failing catalog can neither block nor fail the others.
func (s *ConvertService) searchAll(ctx context.Context, query string) (spotifyMatch, appleMatch, soundcloudMatch models.MatchResult) {
	type slot struct {
		searcher CatalogSearcher
		name     string
		result   *models.MatchResult
	}

	slots := []slot{
		{s.spotify, "spotify", &spotifyMatch},
		{s.apple, "applemusic", &appleMatch},
		{s.soundcloud, "soundcloud", &soundcloudMatch},
	}

	var wg sync.WaitGroup
	for _, sl := range slots {
		if sl.searcher == nil {
			continue
		}
		wg.Add(1)
		go func(sl slot) {
			defer wg.Done()
			*sl.result = s.searchCatalog(ctx, sl.searcher, sl.name, query)
		}(sl)
	}
	wg.Wait()
	return spotifyMatch, appleMatch, soundcloudMatch
}

func (s *ConvertService) searchCatalog(ctx context.Context, searcher CatalogSearcher, name, query string) models.MatchResult {
	searchCtx, cancel := context.WithTimeout(ctx, config.HTTP.CatalogTimeout)
	defer cancel()

	candidates, err := searcher.SearchTracks(searchCtx, query)
	if err != nil {
		log.Printf("Catalog %s search failed for %q: %v", name, query, err)
		return models.MatchResult{}
	}
	return SelectBestMatch(query, candidates)
}

// exposedLink applies the link-exposure rule: a direct deep link requires
// both a matched URL and enough confidence, otherwise the search-page
// fallback is returned.
func exposedLink(match models.MatchResult, confidence int, fallback string) string {
	if match.URL == "" || confidence < config.Match.DirectLinkThreshold {
		return fallback
	}
	return match.URL
}
