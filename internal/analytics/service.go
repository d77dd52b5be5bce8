package analytics

import (
	"log/slog"

	"github.com/frahmantamala/hr-dashboard/internal/store"
)

type ViewsAPI interface {
	Summary() store.Summary
	DepartmentStats() []store.DepartmentStats
	RatingDistribution() []store.RatingBucket
}

type Service struct {
	views  ViewsAPI
	logger *slog.Logger
}

func NewService(views ViewsAPI, logger *slog.Logger) *Service {
	return &Service{
		views:  views,
		logger: logger,
	}
}

func (s *Service) Overview() OverviewResponse {
	return OverviewResponse{Summary: s.views.Summary()}
}

func (s *Service) Departments() DepartmentsResponse {
	return DepartmentsResponse{Departments: s.views.DepartmentStats()}
}

func (s *Service) Ratings() RatingsResponse {
	buckets := s.views.RatingDistribution()
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	s.logger.Debug("rating distribution served", "total", total)
	return RatingsResponse{Buckets: buckets, Total: total}
}
