package store_test

import (
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		s         *store.Store
		publisher *recordingPublisher
	)

	BeforeEach(func() {
		publisher = &recordingPublisher{}
		s = store.New(store.WithPublisher(publisher))
	})

	It("starts empty with default flags", func() {
		st := s.State()
		Expect(st.Employees).To(BeEmpty())
		Expect(st.BookmarkedUsers).To(BeEmpty())
		Expect(st.SearchQuery).To(BeEmpty())
		Expect(st.Loading).To(BeFalse())
		Expect(st.Error).To(BeNil())
		Expect(st.DarkMode).To(BeFalse())
	})

	Describe("SetEmployees", func() {
		It("replaces the collection in arrival order", func() {
			s.SetEmployees([]employee.Employee{emp(3, "c", "HR", 3), emp(1, "a", "HR", 3)})
			s.SetEmployees([]employee.Employee{emp(2, "b", "Sales", 2), emp(5, "e", "Design", 4)})
			Expect(ids(s.State().Employees)).To(Equal([]int64{2, 5}))
		})

		It("does not alias the caller's slice", func() {
			list := []employee.Employee{emp(1, "a", "HR", 3)}
			s.SetEmployees(list)
			list[0].Rating = 1
			got, ok := s.Employee(1)
			Expect(ok).To(BeTrue())
			Expect(got.Rating).To(Equal(3.0))
		})
	})

	Describe("AppendEmployee and NextID", func() {
		It("assigns max id + 1", func() {
			Expect(s.NextID()).To(Equal(int64(1)))
			s.SetEmployees([]employee.Employee{emp(4, "a", "HR", 3), emp(9, "b", "HR", 3), emp(2, "c", "HR", 3)})
			Expect(s.NextID()).To(Equal(int64(10)))

			s.AppendEmployee(emp(s.NextID(), "new", "Design", employee.DefaultRating))
			Expect(ids(s.State().Employees)).To(Equal([]int64{4, 9, 2, 10}))
			Expect(s.NextID()).To(Equal(int64(11)))
		})
	})

	Describe("PromoteUser", func() {
		BeforeEach(func() {
			s.SetEmployees([]employee.Employee{emp(1, "a", "HR", 3.0), emp(2, "b", "HR", 4.8)})
		})

		It("adds half a point", func() {
			Expect(s.PromoteUser(1)).To(BeTrue())
			got, _ := s.Employee(1)
			Expect(got.Rating).To(Equal(3.5))
		})

		It("clamps at the maximum rating", func() {
			s.PromoteUser(2)
			got, _ := s.Employee(2)
			Expect(got.Rating).To(Equal(5.0))
			s.PromoteUser(2)
			got, _ = s.Employee(2)
			Expect(got.Rating).To(Equal(5.0))
		})

		It("matches min(5, r + 0.5n) after n promotions", func() {
			for n := 1; n <= 6; n++ {
				s.PromoteUser(1)
				got, _ := s.Employee(1)
				expected := 3.0 + 0.5*float64(n)
				if expected > 5 {
					expected = 5
				}
				Expect(got.Rating).To(Equal(expected))
			}
		})

		It("is a no-op for unknown ids", func() {
			before := s.State().Employees
			Expect(s.PromoteUser(42)).To(BeFalse())
			Expect(s.State().Employees).To(Equal(before))
		})

		It("leaves previously read collections untouched", func() {
			before := s.State().Employees
			s.PromoteUser(1)
			Expect(before[0].Rating).To(Equal(3.0))
		})
	})

	Describe("ToggleBookmark", func() {
		It("adds then removes an id", func() {
			Expect(s.ToggleBookmark(7)).To(BeTrue())
			Expect(s.IsBookmarked(7)).To(BeTrue())
			Expect(s.ToggleBookmark(7)).To(BeFalse())
			Expect(s.IsBookmarked(7)).To(BeFalse())
		})

		It("restores the original membership when applied twice", func() {
			s.ToggleBookmark(1)
			s.ToggleBookmark(2)
			before := s.State().BookmarkedUsers

			s.ToggleBookmark(2)
			s.ToggleBookmark(2)
			Expect(s.State().BookmarkedUsers).To(ConsistOf(before))
		})

		It("accepts ids with no matching employee", func() {
			s.ToggleBookmark(999)
			Expect(s.State().BookmarkedUsers).To(Equal([]int64{999}))
		})

		It("publishes the persisted subset on every change", func() {
			s.ToggleBookmark(3)
			Expect(publisher.last()).To(Equal(store.Persisted{BookmarkedUsers: []int64{3}, DarkMode: false}))
			s.ToggleBookmark(3)
			Expect(publisher.last()).To(Equal(store.Persisted{BookmarkedUsers: []int64{}, DarkMode: false}))
			Expect(publisher.snapshots).To(HaveLen(2))
		})

		It("still applies the change when persistence fails", func() {
			publisher.fail = true
			Expect(s.ToggleBookmark(3)).To(BeTrue())
			Expect(s.IsBookmarked(3)).To(BeTrue())
		})
	})

	Describe("ToggleDarkMode", func() {
		It("flips the flag and publishes", func() {
			Expect(s.ToggleDarkMode()).To(BeTrue())
			Expect(s.State().DarkMode).To(BeTrue())
			Expect(publisher.last().DarkMode).To(BeTrue())
			Expect(s.ToggleDarkMode()).To(BeFalse())
			Expect(publisher.last().DarkMode).To(BeFalse())
		})
	})

	Describe("filters and status flags", func() {
		It("replaces filter fields unconditionally", func() {
			s.SetSearchQuery("eng")
			s.SetSelectedDepartments([]string{"Sales", "HR", "Sales"})
			s.SetSelectedRatings([]int{4, 3, 4})

			st := s.State()
			Expect(st.SearchQuery).To(Equal("eng"))
			Expect(st.SelectedDepartments).To(Equal([]string{"Sales", "HR"}))
			Expect(st.SelectedRatings).To(Equal([]int{4, 3}))

			s.SetSelectedDepartments(nil)
			Expect(s.State().SelectedDepartments).To(BeEmpty())
		})

		It("sets and clears the error message", func() {
			msg := "boom"
			s.SetError(&msg)
			msg = "changed"
			Expect(*s.State().Error).To(Equal("boom"))
			s.SetError(nil)
			Expect(s.State().Error).To(BeNil())
		})

		It("does not publish for non-persisted fields", func() {
			s.SetLoading(true)
			s.SetSearchQuery("x")
			Expect(s.State().Loading).To(BeTrue())
			Expect(publisher.snapshots).To(BeEmpty())
		})
	})

	Describe("persisted snapshot", func() {
		It("round-trips dark mode and bookmarks through a reload", func() {
			s.SetEmployees([]employee.Employee{emp(1, "a", "HR", 3)})
			s.ToggleDarkMode()
			s.ToggleBookmark(1)
			s.ToggleBookmark(5)
			s.SetSearchQuery("keep me out")

			reloaded := store.New(store.WithPersisted(publisher.last()))
			st := reloaded.State()
			Expect(st.DarkMode).To(BeTrue())
			Expect(st.BookmarkedUsers).To(Equal([]int64{1, 5}))
			Expect(st.Employees).To(BeEmpty())
			Expect(st.SearchQuery).To(BeEmpty())
		})

		It("projects only bookmarks and dark mode", func() {
			p := store.Partialize(store.State{
				BookmarkedUsers: []int64{2},
				DarkMode:        true,
				SearchQuery:     "q",
				Loading:         true,
			})
			Expect(p).To(Equal(store.Persisted{BookmarkedUsers: []int64{2}, DarkMode: true}))
		})

		It("applies as a partial patch", func() {
			st := store.State{SearchQuery: "q", BookmarkedUsers: []int64{9}}
			store.Persisted{BookmarkedUsers: []int64{1, 1, 2}, DarkMode: true}.Apply(&st)
			Expect(st.SearchQuery).To(Equal("q"))
			Expect(st.BookmarkedUsers).To(Equal([]int64{1, 2}))
			Expect(st.DarkMode).To(BeTrue())
		})
	})
})

var _ = Describe("AddEmployee", func() {
	It("assigns max id + 1 and appends", func() {
		s := store.New()
		s.SetEmployees([]employee.Employee{emp(4, "A", "HR", 3), emp(2, "B", "HR", 3)})
		added := s.AddEmployee(func(id int64) employee.Employee {
			return emp(id, "C", "Sales", employee.DefaultRating)
		})
		Expect(added.ID).To(Equal(int64(5)))
		Expect(ids(s.State().Employees)).To(Equal([]int64{4, 2, 5}))
	})

	It("starts at 1 on an empty store", func() {
		s := store.New()
		added := s.AddEmployee(func(id int64) employee.Employee { return emp(id, "C", "Sales", 3.5) })
		Expect(added.ID).To(Equal(int64(1)))
	})
})

var _ = Describe("Dashboard", func() {
	It("exposes filter and status fields", func() {
		d := store.NewDashboard(store.New())
		d.SetSearchQuery("ann")
		d.SetSelectedDepartments([]string{"HR", "HR"})
		d.SetSelectedRatings([]int{4})
		msg := "boom"
		d.SetError(&msg)
		d.SetLoading(true)
		d.ToggleDarkMode()

		Expect(d.SearchQuery()).To(Equal("ann"))
		Expect(d.SelectedDepartments()).To(Equal([]string{"HR"}))
		Expect(d.SelectedRatings()).To(Equal([]int{4}))
		Expect(*d.ErrorMessage()).To(Equal("boom"))
		Expect(d.Loading()).To(BeTrue())
		Expect(d.DarkMode()).To(BeTrue())
	})
})
