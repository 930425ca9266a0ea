package soundcloud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"songbridge/config"
)

func TestNewClientWithoutClientID(t *testing.T) {
	if NewClient("") != nil {
		t.Error("NewClient without a client_id should return nil")
	}
}

func TestSearchTracks(t *testing.T) {
	mockResponse := `{
		"collection": [
			{
				"title": "Get Lucky",
				"permalink_url": "https://soundcloud.com/daftpunk/get-lucky",
				"user": {"username": "Daft Punk"}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("client_id") != "test-id" {
			t.Errorf("client_id = %q", r.URL.Query().Get("client_id"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	client := &Client{clientID: "test-id", httpClient: config.DefaultClient(), baseURL: server.URL}

	candidates, err := client.SearchTracks(context.Background(), "daft punk get lucky")
	if err != nil {
		t.Fatalf("SearchTracks returned error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Artists[0] != "Daft Punk" {
		t.Errorf("artists = %v", candidates[0].Artists)
	}
	if candidates[0].URL != "https://soundcloud.com/daftpunk/get-lucky" {
		t.Errorf("url = %q", candidates[0].URL)
	}
}

func TestSearchTracksEmptyQuery(t *testing.T) {
	client := &Client{clientID: "test-id", httpClient: config.DefaultClient(), baseURL: "http://unreachable.invalid"}

	candidates, err := client.SearchTracks(context.Background(), "")
	if err != nil {
		t.Fatalf("SearchTracks returned error: %v", err)
	}
	if candidates != nil {
		t.Errorf("candidates = %v, want none", candidates)
	}
}

func TestSearchPageURL(t *testing.T) {
	got := SearchPageURL("Artist Track")
	want := "https://soundcloud.com/search?q=Artist+Track"
	if got != want {
		t.Errorf("SearchPageURL = %q, want %q", got, want)
	}
}
