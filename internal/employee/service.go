package employee

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/hr-dashboard/internal"
)

// StoreAPI is the state store together with its memoized views.
type StoreAPI interface {
	Employees() []Employee
	FilteredEmployees() []Employee
	BookmarkedEmployees() []Employee
	Departments() []string
	Employee(id int64) (Employee, bool)
	AddEmployee(build func(id int64) Employee) Employee
	PromoteUser(id int64) bool
	ToggleBookmark(id int64) bool
	IsBookmarked(id int64) bool
	SetSearchQuery(text string)
	SetSelectedDepartments(departments []string)
	SetSelectedRatings(ratings []int)
	SearchQuery() string
	SelectedDepartments() []string
	SelectedRatings() []int
	Loading() bool
	ErrorMessage() *string
}

type HireBuilder interface {
	NewHire(id int64, dto CreateEmployeeDTO) Employee
}

type RosterLoader interface {
	Load(ctx context.Context) error
}

type Service struct {
	store  StoreAPI
	hires  HireBuilder
	loader RosterLoader
	logger *slog.Logger
}

func NewService(store StoreAPI, hires HireBuilder, loader RosterLoader, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		hires:  hires,
		loader: loader,
		logger: logger,
	}
}

func (s *Service) ListEmployees() EmployeesResponse {
	list := s.store.Employees()
	return EmployeesResponse{Employees: list, Total: len(list)}
}

func (s *Service) FilteredEmployees() EmployeesResponse {
	list := s.store.FilteredEmployees()
	return EmployeesResponse{Employees: list, Total: len(list)}
}

func (s *Service) BookmarkedEmployees() EmployeesResponse {
	list := s.store.BookmarkedEmployees()
	return EmployeesResponse{Employees: list, Total: len(list)}
}

func (s *Service) GetEmployee(id int64) (*EmployeeDetailResponse, error) {
	e, ok := s.store.Employee(id)
	if !ok {
		return nil, errors.ErrEmployeeNotFound
	}
	return &EmployeeDetailResponse{Employee: e, Bookmarked: s.store.IsBookmarked(id)}, nil
}

// CreateEmployee validates the form and appends the new hire with the next id.
// Invalid input never reaches the store.
func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		s.logger.Warn("employee creation rejected", "error", appErr.GetDetailedMessage())
		return nil, appErr
	}

	created := s.store.AddEmployee(func(id int64) Employee {
		return s.hires.NewHire(id, dto)
	})

	s.logger.Info("employee created",
		"employee_id", created.ID,
		"department", created.Department)
	return &created, nil
}

// PromoteEmployee raises the rating by one step. The store ignores unknown
// ids; the API reports them as not found.
func (s *Service) PromoteEmployee(id int64) (*Employee, error) {
	if !s.store.PromoteUser(id) {
		return nil, errors.ErrEmployeeNotFound
	}
	e, ok := s.store.Employee(id)
	if !ok {
		return nil, errors.ErrEmployeeNotFound
	}

	s.logger.Info("employee promoted", "employee_id", id, "rating", e.Rating)
	return &e, nil
}

// ToggleBookmark accepts ids of employees that are not loaded.
func (s *Service) ToggleBookmark(id int64) BookmarkResponse {
	bookmarked := s.store.ToggleBookmark(id)
	s.logger.Info("bookmark toggled", "employee_id", id, "bookmarked", bookmarked)
	return BookmarkResponse{EmployeeID: id, Bookmarked: bookmarked}
}

func (s *Service) Departments() DepartmentsResponse {
	return DepartmentsResponse{Departments: s.store.Departments()}
}

func (s *Service) Filters() FiltersResponse {
	return FiltersResponse{
		Query:       s.store.SearchQuery(),
		Departments: s.store.SelectedDepartments(),
		Ratings:     s.store.SelectedRatings(),
	}
}

func (s *Service) SetSearchQuery(dto SearchQueryDTO) FiltersResponse {
	s.store.SetSearchQuery(dto.Query)
	return s.Filters()
}

func (s *Service) SetSelectedDepartments(dto DepartmentsFilterDTO) FiltersResponse {
	s.store.SetSelectedDepartments(dto.Departments)
	return s.Filters()
}

func (s *Service) SetSelectedRatings(dto RatingsFilterDTO) (FiltersResponse, error) {
	if appErr := dto.Validate(); appErr != nil {
		return FiltersResponse{}, appErr
	}
	s.store.SetSelectedRatings(dto.Ratings)
	return s.Filters(), nil
}

func (s *Service) Status() StatusResponse {
	return StatusResponse{
		Loading: s.store.Loading(),
		Error:   s.store.ErrorMessage(),
		Total:   len(s.store.Employees()),
	}
}

// Refetch reloads the roster from upstream. A failure is reflected in Status
// and returned. The fetch outlives cancellation of ctx so a dropped client
// cannot leave a spurious error in the store; the loader bounds its duration.
func (s *Service) Refetch(ctx context.Context) (StatusResponse, error) {
	if err := s.loader.Load(context.WithoutCancel(ctx)); err != nil {
		s.logger.Error("roster refetch failed", "error", err)
		return s.Status(), err
	}
	return s.Status(), nil
}
