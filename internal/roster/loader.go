package roster

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"golang.org/x/sync/singleflight"
)

const loadKey = "roster"

type Fetcher interface {
	FetchPeople(ctx context.Context) ([]RawPerson, error)
}

type Enricher interface {
	EnrichAll(people []RawPerson) []employee.Employee
}

// Sink is the part of the state store the loader writes to.
type Sink interface {
	SetEmployees(list []employee.Employee)
	SetLoading(loading bool)
	SetError(message *string)
	EmployeeCount() int
}

type LoaderOption func(*Loader)

// WithLoadTimeout bounds every load, including ones whose caller context has
// no deadline.
func WithLoadTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = d
	}
}

type Loader struct {
	fetcher  Fetcher
	enricher Enricher
	sink     Sink
	logger   *slog.Logger
	timeout  time.Duration

	// at most one fetch is outstanding; concurrent callers share its result
	flight singleflight.Group
}

func NewLoader(fetcher Fetcher, enricher Enricher, sink Sink, logger *slog.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		enricher: enricher,
		sink:     sink,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and enriches the roster, then replaces the store's collection.
// On failure the collection is left untouched and the store's error is set to
// a single human-readable message. There is no retry. A call made while a
// fetch is in flight waits for that fetch and returns its outcome.
func (l *Loader) Load(ctx context.Context) error {
	_, err, shared := l.flight.Do(loadKey, func() (interface{}, error) {
		return nil, l.load(ctx)
	})
	if shared {
		l.logger.Debug("Load: joined in-flight roster fetch")
	}
	return err
}

func (l *Loader) load(ctx context.Context) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	l.sink.SetLoading(true)
	l.sink.SetError(nil)
	defer l.sink.SetLoading(false)

	people, err := l.fetcher.FetchPeople(ctx)
	if err != nil {
		l.logger.Error("Load: failed to fetch employees", "error", err)
		msg := errors.ErrRosterUnavailable.Message
		l.sink.SetError(&msg)
		return errors.ErrRosterUnavailable.WithCause(err)
	}

	l.sink.SetEmployees(l.enricher.EnrichAll(people))
	l.logger.Info("Load: roster loaded", "count", len(people))
	return nil
}

// LoadIfEmpty loads only when the store holds no employees yet.
func (l *Loader) LoadIfEmpty(ctx context.Context) error {
	if l.sink.EmployeeCount() > 0 {
		l.logger.Debug("LoadIfEmpty: roster already present, skipping fetch")
		return nil
	}
	return l.Load(ctx)
}

// Start runs LoadIfEmpty in the background. The outcome is observable only
// through the store.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		_ = l.LoadIfEmpty(ctx)
	}()
}
