package store

import (
	"slices"
	"sync"

	"github.com/frahmantamala/hr-dashboard/internal/employee"
)

// memo caches the last value computed for a key.
type memo[K comparable, T any] struct {
	mu  sync.Mutex
	key K
	val T
	ok  bool
}

func (m *memo[K, T]) get(key K, compute func() T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ok && m.key == key {
		return m.val
	}
	m.val = compute()
	m.key = key
	m.ok = true
	return m.val
}

type filterKey struct {
	employees, query, department, rating uint64
}

type bookmarkKey struct {
	employees, bookmarks uint64
}

// Views exposes the derived read models of a Store. Each view is recomputed
// only when the revisions of its inputs change; results are shared between
// callers and must be treated as read-only.
type Views struct {
	store *Store

	filtered    memo[filterKey, []employee.Employee]
	departments memo[uint64, []string]
	bookmarked  memo[bookmarkKey, []employee.Employee]
	deptStats   memo[uint64, []DepartmentStats]
	ratings     memo[uint64, []RatingBucket]
	summary     memo[bookmarkKey, Summary]
}

func NewViews(s *Store) *Views {
	return &Views{store: s}
}

// read returns the live state without copying. The store replaces slices
// rather than mutating them, so the references stay valid after unlock.
func (s *Store) read() (State, Revision) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.rev
}

func (v *Views) Employees() []employee.Employee {
	st, _ := v.store.read()
	return st.Employees
}

func (v *Views) Criteria() Criteria {
	st, _ := v.store.read()
	return Criteria{
		Query:       st.SearchQuery,
		Departments: slices.Clone(st.SelectedDepartments),
		Ratings:     slices.Clone(st.SelectedRatings),
	}
}

func (v *Views) FilteredEmployees() []employee.Employee {
	st, rev := v.store.read()
	key := filterKey{rev.Employees, rev.Query, rev.Department, rev.Rating}
	return v.filtered.get(key, func() []employee.Employee {
		return FilterEmployees(st.Employees, Criteria{
			Query:       st.SearchQuery,
			Departments: st.SelectedDepartments,
			Ratings:     st.SelectedRatings,
		})
	})
}

func (v *Views) Departments() []string {
	st, rev := v.store.read()
	return v.departments.get(rev.Employees, func() []string {
		return DistinctDepartments(st.Employees)
	})
}

func (v *Views) BookmarkedEmployees() []employee.Employee {
	st, rev := v.store.read()
	return v.bookmarked.get(bookmarkKey{rev.Employees, rev.Bookmarks}, func() []employee.Employee {
		return BookmarkedEmployees(st.Employees, st.BookmarkedUsers)
	})
}

func (v *Views) DepartmentStats() []DepartmentStats {
	st, rev := v.store.read()
	return v.deptStats.get(rev.Employees, func() []DepartmentStats {
		return DepartmentAggregates(st.Employees)
	})
}

func (v *Views) RatingDistribution() []RatingBucket {
	st, rev := v.store.read()
	return v.ratings.get(rev.Employees, func() []RatingBucket {
		return RatingDistribution(st.Employees)
	})
}

func (v *Views) Summary() Summary {
	st, rev := v.store.read()
	return v.summary.get(bookmarkKey{rev.Employees, rev.Bookmarks}, func() Summary {
		return Summarize(st.Employees, BookmarkedEmployees(st.Employees, st.BookmarkedUsers))
	})
}
