// Package preference persists the durable subset of dashboard state
// (bookmarks and dark mode) as a versioned JSON envelope under a fixed key.
package preference

import (
	"encoding/json"
	"fmt"

	"github.com/frahmantamala/hr-dashboard/internal/store"
)

const (
	DefaultStorageKey = "hr-dashboard-storage"
	EnvelopeVersion   = 0
)

// Envelope is the stored layout: {"state": {...}, "version": 0}.
type Envelope struct {
	State   store.Persisted `json:"state"`
	Version int             `json:"version"`
}

func Encode(p store.Persisted) (string, error) {
	if p.BookmarkedUsers == nil {
		p.BookmarkedUsers = []int64{}
	}
	raw, err := json.Marshal(Envelope{State: p, Version: EnvelopeVersion})
	if err != nil {
		return "", fmt.Errorf("failed to encode preferences: %w", err)
	}
	return string(raw), nil
}

// Decode parses a stored envelope. Envelopes written under another version are
// rejected.
func Decode(value string) (store.Persisted, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(value), &env); err != nil {
		return store.Persisted{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	if env.Version != EnvelopeVersion {
		return store.Persisted{}, fmt.Errorf("unsupported preferences version %d", env.Version)
	}
	if env.State.BookmarkedUsers == nil {
		env.State.BookmarkedUsers = []int64{}
	}
	return env.State, nil
}

type PreferencesResponse struct {
	BookmarkedUsers []int64 `json:"bookmarked_users"`
	DarkMode        bool    `json:"dark_mode"`
}

type DarkModeResponse struct {
	DarkMode bool `json:"dark_mode"`
}
