package applemusic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"songbridge/config"
	"songbridge/models"
)

const itunesSearchURL = "https://itunes.apple.com/search"

// Client searches the public iTunes Search API. The endpoint is keyless,
// so the zero-config constructor is all that is needed.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: config.DefaultClient(),
		baseURL:    itunesSearchURL,
	}
}

type itunesSearchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackName    string `json:"trackName"`
		ArtistName   string `json:"artistName"`
		TrackViewURL string `json:"trackViewUrl"`
	} `json:"results"`
}

// SearchTracks queries the song entity and maps results into candidates.
// An empty query returns no candidates without a request.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]models.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("term", query)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", strconv.Itoa(config.Match.MaxCandidates))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("itunes search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("itunes search returned status %d", resp.StatusCode)
	}

	var body itunesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("itunes decode failed: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(body.Results))
	for _, item := range body.Results {
		candidates = append(candidates, models.Candidate{
			Title:   item.TrackName,
			Artists: []string{item.ArtistName},
			URL:     item.TrackViewURL,
		})
	}
	return candidates, nil
}

// SearchPageURL builds the Apple Music search-page URL used as the
// fallback link.
func SearchPageURL(query string) string {
	return "https://music.apple.com/search?term=" + url.QueryEscape(query)
}
