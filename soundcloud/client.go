package soundcloud

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

const searchTracksURL = "https://api-v2.soundcloud.com/search/tracks"

// Client searches the SoundCloud track search API. A client_id is required;
// the response contract still always exposes the search-page URL, so this
// client only feeds the diagnostic score.
type Client struct {
	clientID   string
	httpClient *http.Client
	baseURL    string
}

// NewClient returns nil when no client_id is configured, which disables the
// SoundCloud search branch entirely.
func NewClient(clientID string) *Client {
	if clientID == "" {
		return nil
	}
	return &Client{
		clientID:   clientID,
		httpClient: config.DefaultClient(),
		baseURL:    searchTracksURL,
	}
}

type searchResponse struct {
	Collection []struct {
		Title string `json:"title"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
		PermalinkURL string `json:"permalink_url"`
	} `json:"collection"`
}

// SearchTracks queries the track search endpoint and maps results into
// candidates. An empty query returns no candidates without a request.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]models.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("client_id", c.clientID)
	params.Set("limit", strconv.Itoa(config.Match.MaxCandidates))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("soundcloud search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("soundcloud search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("soundcloud decode failed: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(body.Collection))
	for _, item := range body.Collection {
		candidates = append(candidates, models.Candidate{
			Title:   item.Title,
			Artists: []string{item.User.Username},
			URL:     item.PermalinkURL,
		})
	}
	return candidates, nil
}

// SearchPageURL builds the SoundCloud search-page URL. This catalog never
// gets a direct deep link in the response contract.
func SearchPageURL(query string) string {
	return "https://soundcloud.com/search?q=" + url.QueryEscape(query)
}
