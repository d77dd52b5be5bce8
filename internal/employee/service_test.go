package employee_test

import (
	"context"
	"time"

	apperrors "github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/internal/roster"
	"github.com/frahmantamala/hr-dashboard/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockLoader implements employee.RosterLoader for testing
type MockLoader struct {
	dashboard *store.Dashboard
	roster    []employee.Employee
	err       error
	calls     int
	ctxErr    error
}

func (m *MockLoader) Load(ctx context.Context) error {
	m.calls++
	m.ctxErr = ctx.Err()
	if m.err != nil {
		msg := "Failed to fetch employees"
		m.dashboard.SetError(&msg)
		return apperrors.ErrRosterUnavailable.WithCause(m.err)
	}
	m.dashboard.SetError(nil)
	m.dashboard.SetEmployees(m.roster)
	return nil
}

func seedRoster() []employee.Employee {
	return []employee.Employee{
		{ID: 1, FirstName: "Alice", LastName: "Ng", Email: "alice@example.com", Department: "Engineering", Rating: 4.6},
		{ID: 2, FirstName: "Bob", LastName: "Ruiz", Email: "bob@example.com", Department: "Sales", Rating: 3.0},
		{ID: 5, FirstName: "Cara", LastName: "Diaz", Email: "cara@example.com", Department: "Sales", Rating: 4.9},
	}
}

var _ = Describe("Employee Service", func() {
	var (
		dashboard *store.Dashboard
		loader    *MockLoader
		service   *employee.Service
	)

	BeforeEach(func() {
		dashboard = store.NewDashboard(store.New(store.WithLogger(quietLogger())))
		dashboard.SetEmployees(seedRoster())
		loader = &MockLoader{dashboard: dashboard, roster: seedRoster()}
		generator := roster.NewGenerator(1, roster.WithClock(func() time.Time {
			return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		}))
		service = employee.NewService(dashboard, generator, loader, quietLogger())
	})

	Describe("reads", func() {
		It("lists the whole roster with its total", func() {
			resp := service.ListEmployees()
			Expect(resp.Total).To(Equal(3))
			Expect(resp.Employees[2].ID).To(Equal(int64(5)))
		})

		It("applies the current criteria", func() {
			service.SetSearchQuery(employee.SearchQueryDTO{Query: "eng"})
			resp := service.FilteredEmployees()
			Expect(resp.Total).To(Equal(1))
			Expect(resp.Employees[0].FirstName).To(Equal("Alice"))
		})

		It("lists departments in first-appearance order", func() {
			Expect(service.Departments().Departments).To(Equal([]string{"Engineering", "Sales"}))
		})

		It("returns the detail with its bookmark flag", func() {
			service.ToggleBookmark(2)
			detail, err := service.GetEmployee(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.FirstName).To(Equal("Bob"))
			Expect(detail.Bookmarked).To(BeTrue())
		})

		It("reports unknown ids as not found", func() {
			_, err := service.GetEmployee(404)
			Expect(err).To(MatchError(apperrors.ErrEmployeeNotFound))
		})
	})

	Describe("CreateEmployee", func() {
		It("appends with max id + 1 and the default rating", func() {
			created, err := service.CreateEmployee(validCreateDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(Equal(int64(6)))
			Expect(created.Rating).To(Equal(employee.DefaultRating))

			list := service.ListEmployees().Employees
			Expect(list).To(HaveLen(4))
			Expect(list[3].ID).To(Equal(int64(6)))
		})

		It("never touches the store on invalid input", func() {
			dto := validCreateDTO()
			dto.Age = 12
			_, err := service.CreateEmployee(dto)
			Expect(err).To(HaveOccurred())
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
			Expect(service.ListEmployees().Total).To(Equal(3))
		})
	})

	Describe("PromoteEmployee", func() {
		It("raises the rating by one step", func() {
			promoted, err := service.PromoteEmployee(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(promoted.Rating).To(Equal(3.5))
		})

		It("clamps at 5", func() {
			promoted, err := service.PromoteEmployee(5)
			Expect(err).NotTo(HaveOccurred())
			Expect(promoted.Rating).To(Equal(5.0))
		})

		It("leaves the collection alone for unknown ids", func() {
			before := service.ListEmployees().Employees
			_, err := service.PromoteEmployee(99)
			Expect(err).To(MatchError(apperrors.ErrEmployeeNotFound))
			Expect(service.ListEmployees().Employees).To(Equal(before))
		})
	})

	Describe("bookmarks", func() {
		It("toggles membership", func() {
			Expect(service.ToggleBookmark(1).Bookmarked).To(BeTrue())
			Expect(service.BookmarkedEmployees().Total).To(Equal(1))
			Expect(service.ToggleBookmark(1).Bookmarked).To(BeFalse())
			Expect(service.BookmarkedEmployees().Total).To(BeZero())
		})

		It("accepts ids that are not loaded", func() {
			Expect(service.ToggleBookmark(777).Bookmarked).To(BeTrue())
			Expect(service.BookmarkedEmployees().Employees).To(BeEmpty())
		})
	})

	Describe("filters", func() {
		It("echoes the criteria after each change", func() {
			service.SetSearchQuery(employee.SearchQueryDTO{Query: "a"})
			service.SetSelectedDepartments(employee.DepartmentsFilterDTO{Departments: []string{"Sales"}})
			filters, err := service.SetSelectedRatings(employee.RatingsFilterDTO{Ratings: []int{4}})
			Expect(err).NotTo(HaveOccurred())
			Expect(filters).To(Equal(employee.FiltersResponse{
				Query:       "a",
				Departments: []string{"Sales"},
				Ratings:     []int{4},
			}))
			Expect(service.FilteredEmployees().Employees[0].ID).To(Equal(int64(5)))
		})

		It("rejects rating bands outside 1..5", func() {
			_, err := service.SetSelectedRatings(employee.RatingsFilterDTO{Ratings: []int{7}})
			Expect(err).To(HaveOccurred())
			Expect(service.Filters().Ratings).To(BeEmpty())
		})
	})

	Describe("Refetch", func() {
		It("reloads the roster", func() {
			dashboard.SetEmployees(nil)
			status, err := service.Refetch(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(status.Total).To(Equal(3))
			Expect(status.Error).To(BeNil())
			Expect(loader.calls).To(Equal(1))
		})

		It("surfaces the failure in the status", func() {
			loader.err = context.DeadlineExceeded
			status, err := service.Refetch(context.Background())
			Expect(err).To(MatchError(apperrors.ErrRosterUnavailable))
			Expect(*status.Error).To(Equal("Failed to fetch employees"))
			Expect(service.Status().Total).To(Equal(3))
		})

		It("keeps loading after the caller goes away", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			status, err := service.Refetch(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(loader.ctxErr).To(BeNil())
			Expect(status.Error).To(BeNil())
		})
	})
})
