package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"songbridge/config"
	"songbridge/models"
)

// Client searches the Spotify Web API using an application token obtained
// through the OAuth2 client-credentials flow. The underlying token source
// caches the token and refreshes it near expiry, so the exchange does not
// repeat on every request.
type Client struct {
	api *spotifyapi.Client
}

// NewClient builds a client from the application credential pair. Returns
// nil when the credentials are absent; callers treat a nil client as a
// catalog that contributes no candidates.
func NewClient(clientID, clientSecret string) *Client {
	if clientID == "" || clientSecret == "" {
		return nil
	}

	auth := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := auth.Client(context.Background())
	return &Client{api: spotifyapi.New(httpClient)}
}

// SearchTracks queries the track search endpoint and maps results into
// candidates. An empty query returns no candidates without a request.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]models.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	results, err := c.api.Search(ctx, query, spotifyapi.SearchTypeTrack,
		spotifyapi.Limit(config.Match.MaxCandidates))
	if err != nil {
		return nil, fmt.Errorf("spotify search failed: %w", err)
	}
	if results.Tracks == nil {
		return nil, nil
	}

	candidates := make([]models.Candidate, 0, len(results.Tracks.Tracks))
	for _, track := range results.Tracks.Tracks {
		artists := make([]string, 0, len(track.Artists))
		for _, a := range track.Artists {
			artists = append(artists, a.Name)
		}

		trackURL := track.ExternalURLs["spotify"]
		if trackURL == "" {
			trackURL = "https://open.spotify.com/track/" + string(track.ID)
		}

		candidates = append(candidates, models.Candidate{
			Title:   track.Name,
			Artists: artists,
			URL:     trackURL,
		})
	}
	return candidates, nil
}

// SearchPageURL builds the catalog's search-page URL for a query, used as
// the fallback link when no confident direct match exists.
func SearchPageURL(query string) string {
	return "https://open.spotify.com/search/" + url.PathEscape(query)
}
