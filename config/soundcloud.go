package config

import "os"

type SoundCloudConfig struct {
	ClientID string `env:"SOUNDCLOUD_CLIENT_ID"`
}

var SoundCloud = loadSoundCloudConfig()

func loadSoundCloudConfig() SoundCloudConfig {
	return SoundCloudConfig{
		ClientID: os.Getenv("SOUNDCLOUD_CLIENT_ID"),
	}
}

func (c SoundCloudConfig) Configured() bool {
	return c.ClientID != ""
}
