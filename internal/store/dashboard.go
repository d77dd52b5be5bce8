package store

import (
	"slices"
)

// Dashboard pairs a Store with its Views so a single value serves both the
// mutations and the memoized reads.
type Dashboard struct {
	*Store
	*Views
}

func NewDashboard(s *Store) *Dashboard {
	return &Dashboard{Store: s, Views: NewViews(s)}
}

func (d *Dashboard) SearchQuery() string {
	st, _ := d.Store.read()
	return st.SearchQuery
}

func (d *Dashboard) SelectedDepartments() []string {
	st, _ := d.Store.read()
	return slices.Clone(st.SelectedDepartments)
}

func (d *Dashboard) SelectedRatings() []int {
	st, _ := d.Store.read()
	return slices.Clone(st.SelectedRatings)
}

func (d *Dashboard) Loading() bool {
	st, _ := d.Store.read()
	return st.Loading
}

// ErrorMessage returns a copy of the last acquisition error, or nil.
func (d *Dashboard) ErrorMessage() *string {
	st, _ := d.Store.read()
	if st.Error == nil {
		return nil
	}
	msg := *st.Error
	return &msg
}

func (d *Dashboard) DarkMode() bool {
	st, _ := d.Store.read()
	return st.DarkMode
}
