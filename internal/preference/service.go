package preference

import (
	"context"
	"fmt"
	"log/slog"

	preferenceDatamodel "github.com/frahmantamala/hr-dashboard/internal/core/datamodel/preference"
	"github.com/frahmantamala/hr-dashboard/internal/core/events"
	"github.com/frahmantamala/hr-dashboard/internal/store"
)

type RepositoryAPI interface {
	Get(ctx context.Context, key string) (*preferenceDatamodel.StorageEntry, error)
	Upsert(ctx context.Context, entry *preferenceDatamodel.StorageEntry) error
}

type Service struct {
	repo   RepositoryAPI
	key    string
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, key string, logger *slog.Logger) *Service {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Service{
		repo:   repo,
		key:    key,
		logger: logger,
	}
}

// Load returns the persisted snapshot. A missing row yields the zero snapshot;
// an unreadable one is logged and discarded the same way.
func (s *Service) Load(ctx context.Context) (store.Persisted, error) {
	empty := store.Persisted{BookmarkedUsers: []int64{}}

	entry, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("failed to read preferences", "key", s.key, "error", err)
		return empty, fmt.Errorf("load preferences: %w", err)
	}
	if entry == nil {
		s.logger.Info("no persisted preferences, starting fresh", "key", s.key)
		return empty, nil
	}

	p, err := Decode(entry.Value)
	if err != nil {
		s.logger.Warn("discarding unreadable preferences", "key", s.key, "error", err)
		return empty, nil
	}

	s.logger.Info("preferences restored",
		"key", s.key,
		"bookmarks", len(p.BookmarkedUsers),
		"dark_mode", p.DarkMode)
	return p, nil
}

// Save overwrites the stored snapshot.
func (s *Service) Save(ctx context.Context, p store.Persisted) error {
	value, err := Encode(p)
	if err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, &preferenceDatamodel.StorageEntry{Key: s.key, Value: value}); err != nil {
		s.logger.Error("failed to write preferences", "key", s.key, "error", err)
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func (s *Service) HandlePreferencesChanged(ctx context.Context, event events.Event) error {
	changed, ok := event.(*store.PreferencesChangedEvent)
	if !ok {
		s.logger.Error("invalid event type for preferences handler", "event_type", event.EventType())
		return fmt.Errorf("expected PreferencesChangedEvent, got %T", event)
	}

	if err := s.Save(ctx, changed.Snapshot); err != nil {
		return err
	}

	s.logger.Debug("preferences persisted",
		"event_id", changed.EventID(),
		"bookmarks", len(changed.Snapshot.BookmarkedUsers),
		"dark_mode", changed.Snapshot.DarkMode)
	return nil
}

func (s *Service) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypePreferencesChanged, s.HandlePreferencesChanged)

	s.logger.Info("preference event handlers registered",
		"handlers", []string{events.EventTypePreferencesChanged})
}
