// Package analytics serves the aggregate figures shown on the analytics view.
package analytics

import (
	"github.com/frahmantamala/hr-dashboard/internal/store"
)

type OverviewResponse struct {
	store.Summary
}

type DepartmentsResponse struct {
	Departments []store.DepartmentStats `json:"departments"`
}

type RatingsResponse struct {
	Buckets []store.RatingBucket `json:"buckets"`
	Total   int                  `json:"total"`
}
