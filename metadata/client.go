package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"songbridge/config"
	"songbridge/models"
)

const (
	youtubeOEmbedURL = "https://www.youtube.com/oembed"
	tiktokOEmbedURL  = "https://www.tiktok.com/oembed"
)

// ErrUnsupportedSource is returned for links that are neither YouTube nor
// TikTok. Handlers surface it as a client error, not a server fault.
var ErrUnsupportedSource = errors.New("unsupported source link")

// The host patterns are anchored at both ends so a crafted host like
// youtube.com.evil.example cannot pass as YouTube. An optional port is allowed.
var (
	youtubePattern = regexp.MustCompile(`(?i)^(?:[^.]+\.)*(?:youtube\.com|youtu\.be)(?::\d+)?$`)
	tiktokPattern  = regexp.MustCompile(`(?i)^(?:[^.]+\.)*tiktok\.com(?::\d+)?$`)
)

// DetectPlatform classifies a media link by its host.
func DetectPlatform(link string) models.Platform {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return models.PlatformUnknown
	}
	switch {
	case youtubePattern.MatchString(u.Host):
		return models.PlatformYouTube
	case tiktokPattern.MatchString(u.Host):
		return models.PlatformTikTok
	default:
		return models.PlatformUnknown
	}
}

// Client fetches title metadata for a media link from the source platform's
// keyless oEmbed endpoint.
type Client struct {
	httpClient *http.Client

	// Endpoint overrides for tests; defaults are used when empty.
	youtubeEndpoint string
	tiktokEndpoint  string
}

func NewClient() *Client {
	return &Client{
		httpClient: config.DefaultClient(),
	}
}

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Fetch resolves the platform for link and retrieves its oEmbed metadata.
// TikTok exposes the creator as author_name, which downstream normalization
// prefers as the artist; YouTube's author_name is a channel name and is not
// treated as an artist.
func (c *Client) Fetch(ctx context.Context, link string) (models.SourceMetadata, error) {
	platform := DetectPlatform(link)

	var endpoint string
	switch platform {
	case models.PlatformYouTube:
		endpoint = c.youtubeEndpoint
		if endpoint == "" {
			endpoint = youtubeOEmbedURL
		}
	case models.PlatformTikTok:
		endpoint = c.tiktokEndpoint
		if endpoint == "" {
			endpoint = tiktokOEmbedURL
		}
	default:
		return models.SourceMetadata{Platform: models.PlatformUnknown}, ErrUnsupportedSource
	}

	params := url.Values{}
	params.Set("url", link)
	if platform == models.PlatformYouTube {
		params.Set("format", "json")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.SourceMetadata{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SourceMetadata{}, fmt.Errorf("oembed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SourceMetadata{}, fmt.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.SourceMetadata{}, fmt.Errorf("oembed decode failed: %w", err)
	}

	meta := models.SourceMetadata{
		Platform: platform,
		Title:    body.Title,
	}
	if platform == models.PlatformTikTok {
		meta.Artist = body.AuthorName
	}
	return meta, nil
}
