package config

import "os"

type SpotifyConfig struct {
	ClientID     string `env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
}

var Spotify = loadSpotifyConfig()

func loadSpotifyConfig() SpotifyConfig {
	return SpotifyConfig{
		ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	}
}

// Configured reports whether the application credential pair is present.
// When it is not, the Spotify catalog contributes nothing to a conversion.
func (c SpotifyConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
