// Package store holds the dashboard's single mutable state container and the
// derived views computed from it.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/frahmantamala/hr-dashboard/internal/core/events"
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/pkg/logger"
)

// State is a point-in-time copy of everything the store holds.
type State struct {
	Employees           []employee.Employee
	BookmarkedUsers     []int64
	SearchQuery         string
	SelectedDepartments []string
	SelectedRatings     []int
	DarkMode            bool
	Loading             bool
	Error               *string
}

// Revision counts replacements per field. Views compare revisions to decide
// whether a memoized result is still current.
type Revision struct {
	Employees  uint64
	Bookmarks  uint64
	Query      uint64
	Department uint64
	Rating     uint64
}

type Publisher interface {
	PublishSync(ctx context.Context, event events.Event) error
}

type Option func(*Store)

// WithPersisted hydrates the store from a previously persisted snapshot.
func WithPersisted(p Persisted) Option {
	return func(s *Store) {
		p.Apply(&s.state)
	}
}

// WithPublisher makes bookmark and dark-mode changes emit a preferences.changed event.
func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

type Store struct {
	mu    sync.RWMutex
	state State
	rev   Revision

	// serializes preference changes so snapshots are published in mutation order
	prefMu    sync.Mutex
	publisher Publisher
	logger    *slog.Logger
}

func New(opts ...Option) *Store {
	s := &Store{
		state: State{
			Employees:           []employee.Employee{},
			BookmarkedUsers:     []int64{},
			SelectedDepartments: []string{},
			SelectedRatings:     []int{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.LoggerWrapper()
	}
	return s
}

// State returns a copy; slices are cloned so callers cannot alias store memory.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

func (s *Store) cloneLocked() State {
	st := s.state
	st.Employees = slices.Clone(s.state.Employees)
	st.BookmarkedUsers = slices.Clone(s.state.BookmarkedUsers)
	st.SelectedDepartments = slices.Clone(s.state.SelectedDepartments)
	st.SelectedRatings = slices.Clone(s.state.SelectedRatings)
	if s.state.Error != nil {
		msg := *s.state.Error
		st.Error = &msg
	}
	return st
}

func (s *Store) Revision() Revision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

func (s *Store) SetEmployees(list []employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Employees = slices.Clone(list)
	if s.state.Employees == nil {
		s.state.Employees = []employee.Employee{}
	}
	s.rev.Employees++
}

// AppendEmployee adds a fully-formed employee to the end of the collection.
// The caller assigns the id.
func (s *Store) AppendEmployee(e employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]employee.Employee, 0, len(s.state.Employees)+1)
	next = append(next, s.state.Employees...)
	s.state.Employees = append(next, e)
	s.rev.Employees++
}

// AddEmployee assigns the next id (max existing id + 1) and appends the
// employee build returns, atomically with respect to other writers.
func (s *Store) AddEmployee(build func(id int64) employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := build(employee.MaxID(s.state.Employees) + 1)
	next := make([]employee.Employee, 0, len(s.state.Employees)+1)
	next = append(next, s.state.Employees...)
	s.state.Employees = append(next, e)
	s.rev.Employees++
	return e
}

// PromoteUser raises the matching employee's rating by one step, clamped at
// the maximum. Unknown ids are a no-op; the result reports whether one matched.
func (s *Store) PromoteUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.state.Employees, func(e employee.Employee) bool { return e.ID == id })
	if idx < 0 {
		return false
	}

	// copy-on-write keeps slices handed out by earlier reads unchanged
	next := slices.Clone(s.state.Employees)
	next[idx] = next[idx].Promoted()
	s.state.Employees = next
	s.rev.Employees++
	return true
}

func (s *Store) Employee(id int64) (employee.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.state.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return employee.Employee{}, false
}

func (s *Store) EmployeeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Employees)
}

// NextID is the id a newly created employee receives: max existing id + 1.
func (s *Store) NextID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return employee.MaxID(s.state.Employees) + 1
}

// ToggleBookmark inserts id into the bookmark set when absent and removes it
// when present. Ids of unknown employees are accepted. It returns the new
// membership of id.
func (s *Store) ToggleBookmark(id int64) bool {
	s.prefMu.Lock()
	defer s.prefMu.Unlock()

	s.mu.Lock()
	bookmarked := false
	if idx := slices.Index(s.state.BookmarkedUsers, id); idx >= 0 {
		s.state.BookmarkedUsers = slices.Delete(slices.Clone(s.state.BookmarkedUsers), idx, idx+1)
	} else {
		s.state.BookmarkedUsers = append(slices.Clone(s.state.BookmarkedUsers), id)
		bookmarked = true
	}
	s.rev.Bookmarks++
	snapshot := Partialize(s.state)
	s.mu.Unlock()

	s.publishPreferences(snapshot)
	return bookmarked
}

func (s *Store) IsBookmarked(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.state.BookmarkedUsers, id)
}

func (s *Store) ToggleDarkMode() bool {
	s.prefMu.Lock()
	defer s.prefMu.Unlock()

	s.mu.Lock()
	s.state.DarkMode = !s.state.DarkMode
	dark := s.state.DarkMode
	snapshot := Partialize(s.state)
	s.mu.Unlock()

	s.publishPreferences(snapshot)
	return dark
}

func (s *Store) SetSearchQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = text
	s.rev.Query++
}

func (s *Store) SetSelectedDepartments(departments []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedDepartments = dedupe(departments)
	s.rev.Department++
}

func (s *Store) SetSelectedRatings(ratings []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedRatings = dedupe(ratings)
	s.rev.Rating++
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

// SetError replaces the error message; nil clears it.
func (s *Store) SetError(message *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == nil {
		s.state.Error = nil
		return
	}
	msg := *message
	s.state.Error = &msg
}

func (s *Store) publishPreferences(snapshot Persisted) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSync(context.Background(), NewPreferencesChangedEvent(snapshot)); err != nil {
		s.logger.Warn("failed to persist preferences", "error", err)
	}
}

// dedupe keeps first occurrences, treating the input as a set.
func dedupe[T comparable](in []T) []T {
	out := make([]T, 0, len(in))
	seen := make(map[T]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
