package store

import (
	"slices"

	"github.com/frahmantamala/hr-dashboard/internal/employee"
)

// Criteria is the conjunction of the three employee filters. Empty fields
// do not filter.
type Criteria struct {
	Query       string
	Departments []string
	Ratings     []int
}

func (c Criteria) Matches(e *employee.Employee) bool {
	if !e.MatchesQuery(c.Query) {
		return false
	}
	if len(c.Departments) > 0 && !slices.Contains(c.Departments, e.Department) {
		return false
	}
	if len(c.Ratings) > 0 && !slices.Contains(c.Ratings, e.RatingFloor()) {
		return false
	}
	return true
}

func FilterEmployees(emps []employee.Employee, c Criteria) []employee.Employee {
	out := make([]employee.Employee, 0, len(emps))
	for i := range emps {
		if c.Matches(&emps[i]) {
			out = append(out, emps[i])
		}
	}
	return out
}

// DistinctDepartments lists the departments present in emps in order of
// first appearance.
func DistinctDepartments(emps []employee.Employee) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, e := range emps {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out
}

func BookmarkedEmployees(emps []employee.Employee, ids []int64) []employee.Employee {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]employee.Employee, 0, len(ids))
	for _, e := range emps {
		if _, ok := set[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

type DepartmentStats struct {
	Department    string  `json:"department"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
	TopPerformers int     `json:"top_performers"`
}

// DepartmentAggregates counts employees and averages ratings per department.
// Only departments that have employees appear.
func DepartmentAggregates(emps []employee.Employee) []DepartmentStats {
	index := make(map[string]int)
	sums := make([]float64, 0)
	out := make([]DepartmentStats, 0)

	for i := range emps {
		e := &emps[i]
		idx, ok := index[e.Department]
		if !ok {
			idx = len(out)
			index[e.Department] = idx
			out = append(out, DepartmentStats{Department: e.Department})
			sums = append(sums, 0)
		}
		out[idx].Count++
		sums[idx] += e.Rating
		if e.IsTopPerformer() {
			out[idx].TopPerformers++
		}
	}

	for i := range out {
		out[i].AverageRating = sums[i] / float64(out[i].Count)
	}
	return out
}

const (
	BucketExcellent    = "Excellent"
	BucketGood         = "Good"
	BucketAverage      = "Average"
	BucketBelowAverage = "Below Average"
)

type RatingBucket struct {
	Label string  `json:"label"`
	Range string  `json:"range"`
	Min   float64 `json:"min"`
	Count int     `json:"count"`
}

// ratingBands is ordered top-down; an employee lands in the first band whose
// lower bound its rating reaches.
var ratingBands = []RatingBucket{
	{Label: BucketExcellent, Range: "4.5-5.0", Min: 4.5},
	{Label: BucketGood, Range: "3.5-4.4", Min: 3.5},
	{Label: BucketAverage, Range: "2.5-3.4", Min: 2.5},
	{Label: BucketBelowAverage, Range: "< 2.5", Min: 0},
}

func BucketFor(rating float64) string {
	for _, b := range ratingBands[:len(ratingBands)-1] {
		if rating >= b.Min {
			return b.Label
		}
	}
	return BucketBelowAverage
}

func RatingDistribution(emps []employee.Employee) []RatingBucket {
	out := slices.Clone(ratingBands)
	for _, e := range emps {
		label := BucketFor(e.Rating)
		for i := range out {
			if out[i].Label == label {
				out[i].Count++
				break
			}
		}
	}
	return out
}

type Summary struct {
	TotalEmployees  int     `json:"total_employees"`
	AverageRating   float64 `json:"average_rating"`
	TopPerformers   int     `json:"top_performers"`
	Departments     int     `json:"departments"`
	BookmarkedCount int     `json:"bookmarked"`
}

// Summarize computes the headline dashboard figures. AverageRating is 0 for
// an empty roster.
func Summarize(emps []employee.Employee, bookmarks []employee.Employee) Summary {
	s := Summary{
		TotalEmployees:  len(emps),
		Departments:     len(DistinctDepartments(emps)),
		BookmarkedCount: len(bookmarks),
	}
	var total float64
	for i := range emps {
		total += emps[i].Rating
		if emps[i].IsTopPerformer() {
			s.TopPerformers++
		}
	}
	if len(emps) > 0 {
		s.AverageRating = total / float64(len(emps))
	}
	return s
}
