package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"songbridge/metadata"
	"songbridge/models"
)

type stubConverter struct {
	result *models.ConversionResult
	err    error
}

func (s *stubConverter) Convert(ctx context.Context, link string) (*models.ConversionResult, error) {
	return s.result, s.err
}

func newTestRouter(converter Converter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/convert", NewConvertController(converter).Convert)
	return r
}

func postConvert(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConvertMissingURL(t *testing.T) {
	r := newTestRouter(&stubConverter{})

	for _, body := range []string{`{}`, `{"youtubeUrl": ""}`, `{"youtubeUrl": "   "}`, `not json`} {
		w := postConvert(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body %q: response is not JSON: %v", body, err)
		}
		if resp["error"] == "" {
			t.Errorf("body %q: missing error message in response", body)
		}
	}
}

func TestConvertUnsupportedSource(t *testing.T) {
	r := newTestRouter(&stubConverter{err: metadata.ErrUnsupportedSource})

	w := postConvert(t, r, `{"youtubeUrl": "https://example.com/not-a-video"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestConvertInternalFailure(t *testing.T) {
	r := newTestRouter(&stubConverter{err: errors.New("token exchange failed")})

	w := postConvert(t, r, `{"youtubeUrl": "https://www.youtube.com/watch?v=abc"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["error"] != "Internal server error" {
		t.Errorf("error = %q, internal detail must not leak", resp["error"])
	}
}

func TestConvertSuccess(t *testing.T) {
	r := newTestRouter(&stubConverter{result: &models.ConversionResult{
		SourceTitle:   "Artist - Track",
		CleanedQuery:  "Artist Track",
		Platform:      models.PlatformYouTube,
		Confidence:    86,
		MatchType:     "high",
		SpotifyURL:    "https://open.spotify.com/track/abc",
		AppleMusicURL: "https://music.apple.com/us/album/track/123",
		SoundCloudURL: "https://soundcloud.com/search?q=Artist%20Track",
	}})

	w := postConvert(t, r, `{"youtubeUrl": "https://www.youtube.com/watch?v=abc"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}

	if resp["confidence"] != float64(86) {
		t.Errorf("confidence = %v, want 86", resp["confidence"])
	}
	if resp["matchType"] != "high" {
		t.Errorf("matchType = %v, want high", resp["matchType"])
	}
	for _, field := range []string{"sourceTitle", "cleanedQuery", "spotifyUrl", "appleMusicUrl", "soundCloudUrl"} {
		if _, ok := resp[field]; !ok {
			t.Errorf("response missing field %q", field)
		}
	}
}
