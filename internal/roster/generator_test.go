package roster_test

import (
	"math"
	"strings"
	"time"

	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/internal/roster"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Generator", func() {
	fixed := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	person := roster.RawPerson{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Age: 36}

	It("is deterministic for a given seed and clock", func() {
		a := roster.NewGenerator(42, roster.WithClock(clock)).Enrich(person)
		b := roster.NewGenerator(42, roster.WithClock(clock)).Enrich(person)
		Expect(a).To(Equal(b))
	})

	It("keeps the upstream identity fields", func() {
		e := roster.NewGenerator(1, roster.WithClock(clock)).Enrich(person)
		Expect(e.ID).To(Equal(int64(7)))
		Expect(e.FullName()).To(Equal("Ada Lovelace"))
		Expect(e.Email).To(Equal("ada@example.com"))
		Expect(e.Age).To(Equal(36))
	})

	It("generates values inside their documented ranges", func() {
		g := roster.NewGenerator(99, roster.WithClock(clock))
		for i := int64(1); i <= 200; i++ {
			e := g.Enrich(roster.RawPerson{ID: i})

			Expect(employee.IsValidDepartment(e.Department)).To(BeTrue())
			Expect(e.Rating).To(BeNumerically(">=", employee.MinRating))
			Expect(e.Rating).To(BeNumerically("<=", employee.MaxRating))
			Expect(math.Mod(e.Rating*2, 1)).To(BeZero())
			Expect(e.Bio).To(HavePrefix("Experienced " + strings.ToLower(e.Department)))

			Expect(len(e.Projects)).To(BeNumerically(">=", 1))
			Expect(len(e.Projects)).To(BeNumerically("<=", 4))
			for _, p := range e.Projects {
				Expect(employee.ProjectStatuses).To(ContainElement(p.Status))
				Expect(p.Progress).To(BeNumerically("<", 100))
				deadline, err := time.Parse("2006-01-02", p.Deadline)
				Expect(err).NotTo(HaveOccurred())
				Expect(deadline).To(BeTemporally(">=", fixed.Truncate(24*time.Hour)))
			}

			Expect(len(e.Feedback)).To(BeNumerically(">=", 2))
			Expect(len(e.Feedback)).To(BeNumerically("<=", 6))
			for _, f := range e.Feedback {
				Expect(f.Rating).To(BeNumerically(">=", 1))
				Expect(f.Rating).To(BeNumerically("<=", 5))
				Expect(employee.FeedbackTypes).To(ContainElement(f.Type))
			}

			Expect(e.PerformanceHistory).To(HaveLen(4))
			Expect(e.PerformanceHistory[0].Period).To(Equal("Q4 2024"))
			Expect(e.PerformanceHistory[3].Period).To(Equal("Q1 2024"))
			for _, r := range e.PerformanceHistory {
				Expect(len(r.Goals)).To(BeNumerically(">=", 1))
				Expect(len(r.Goals)).To(BeNumerically("<=", 3))
			}
		}
	})

	It("names projects and feedback after the owner", func() {
		e := roster.NewGenerator(5, roster.WithClock(clock)).Enrich(person)
		Expect(e.Projects[0].ID).To(Equal("proj-7-0"))
		Expect(e.Projects[0].Name).To(Equal("Project A"))
		Expect(e.Feedback[0].ID).To(Equal("feedback-7-0"))
		Expect(e.Feedback[0].Author).To(Equal("Manager 1"))
	})

	It("enriches a batch in input order", func() {
		out := roster.NewGenerator(3, roster.WithClock(clock)).EnrichAll([]roster.RawPerson{{ID: 3}, {ID: 1}, {ID: 2}})
		Expect(out).To(HaveLen(3))
		Expect([]int64{out[0].ID, out[1].ID, out[2].ID}).To(Equal([]int64{3, 1, 2}))
	})

	Describe("NewHire", func() {
		dto := employee.CreateEmployeeDTO{
			FirstName:  "Grace",
			LastName:   "Hopper",
			Email:      "grace@example.com",
			Phone:      "555-0100",
			Age:        40,
			Department: "Engineering",
			Address:    "1 Navy Way",
			City:       "Arlington",
			State:      "VA",
			PostalCode: "22202",
			Country:    "USA",
		}

		It("starts the employee at the default rating with an onboarding record", func() {
			e := roster.NewGenerator(1, roster.WithClock(clock)).NewHire(21, dto)
			Expect(e.ID).To(Equal(int64(21)))
			Expect(e.Rating).To(Equal(employee.DefaultRating))
			Expect(e.Bio).To(Equal("New engineering team member"))
			Expect(e.Address.City).To(Equal("Arlington"))
			Expect(e.Projects).To(BeEmpty())
			Expect(e.Feedback).To(BeEmpty())
			Expect(e.Image).To(HavePrefix("https://images.pexels.com/photos/"))
			Expect(e.PerformanceHistory).To(HaveLen(1))
			Expect(e.PerformanceHistory[0].Period).To(Equal("Q1 2025"))
			Expect(e.PerformanceHistory[0].Goals).To(Equal([]string{"Complete onboarding", "Learn team processes"}))
		})

		It("keeps a provided bio", func() {
			withBio := dto
			withBio.Bio = "Compiler pioneer"
			e := roster.NewGenerator(1, roster.WithClock(clock)).NewHire(1, withBio)
			Expect(e.Bio).To(Equal("Compiler pioneer"))
		})
	})
})
