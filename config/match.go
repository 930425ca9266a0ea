package config

import (
	"os"
	"strconv"
)

type MatchConfig struct {
	// DirectLinkThreshold is the minimum confidence (0-100) required to
	// expose a catalog's direct track link instead of its search-page URL.
	DirectLinkThreshold int `env:"MATCH_DIRECT_LINK_THRESHOLD" envDefault:"74"`
	MaxCandidates       int `env:"MATCH_MAX_CANDIDATES" envDefault:"5"`
}

var Match = loadMatchConfig()

func loadMatchConfig() MatchConfig {
	cfg := MatchConfig{
		DirectLinkThreshold: 74,
		MaxCandidates:       5,
	}

	if v := os.Getenv("MATCH_DIRECT_LINK_THRESHOLD"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.DirectLinkThreshold = i
		}
	}

	if v := os.Getenv("MATCH_MAX_CANDIDATES"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			cfg.MaxCandidates = i
		}
	}

	return cfg
}
