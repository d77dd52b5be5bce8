package store

import (
	"slices"

	"github.com/frahmantamala/hr-dashboard/internal/core/events"
)

// Persisted is the subset of State that survives a restart.
type Persisted struct {
	BookmarkedUsers []int64 `json:"bookmarkedUsers"`
	DarkMode        bool    `json:"darkMode"`
}

// Partialize projects a state onto its durable subset.
func Partialize(s State) Persisted {
	bookmarks := slices.Clone(s.BookmarkedUsers)
	if bookmarks == nil {
		bookmarks = []int64{}
	}
	return Persisted{
		BookmarkedUsers: bookmarks,
		DarkMode:        s.DarkMode,
	}
}

// Apply patches s with the persisted fields and leaves everything else alone.
func (p Persisted) Apply(s *State) {
	s.BookmarkedUsers = dedupe(p.BookmarkedUsers)
	s.DarkMode = p.DarkMode
}

type PreferencesChangedEvent struct {
	events.BaseEvent
	Snapshot Persisted `json:"snapshot"`
}

func NewPreferencesChangedEvent(snapshot Persisted) *PreferencesChangedEvent {
	return &PreferencesChangedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypePreferencesChanged, map[string]interface{}{
			"bookmarks": len(snapshot.BookmarkedUsers),
			"dark_mode": snapshot.DarkMode,
		}),
		Snapshot: snapshot,
	}
}
