package roster

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/frahmantamala/hr-dashboard/internal/employee"
)

const dateLayout = "2006-01-02"

var feedbackContent = []string{
	"Excellent work on the recent project deliverables.",
	"Shows great initiative and leadership qualities.",
	"Could improve on time management skills.",
	"Demonstrates strong technical expertise.",
	"Great team player and collaborator.",
}

var performanceGoals = []string{
	"Improve project delivery time",
	"Enhance team collaboration",
	"Develop new technical skills",
	"Mentor junior team members",
}

var performanceAchievements = []string{
	"Successfully delivered major project",
	"Received client appreciation",
	"Completed certification course",
	"Led team initiative",
}

// Generator fills in the HR fields the people API does not provide. Output is
// fully determined by the random source and the clock it was built with.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

type GeneratorOption func(*Generator)

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator seeds the random source with seed, or with the current time
// when seed is 0.
func NewGenerator(seed int64, opts ...GeneratorOption) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) EnrichAll(people []RawPerson) []employee.Employee {
	out := make([]employee.Employee, 0, len(people))
	for _, p := range people {
		out = append(out, g.Enrich(p))
	}
	return out
}

func (g *Generator) Enrich(p RawPerson) employee.Employee {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	department := employee.Departments[g.rnd.Intn(len(employee.Departments))]

	return employee.Employee{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Age:       p.Age,
		Phone:     p.Phone,
		Image:     p.Image,
		Address: employee.Address{
			Address:    p.Address.Address,
			City:       p.Address.City,
			State:      p.Address.State,
			PostalCode: p.Address.PostalCode,
			Country:    p.Address.Country,
		},
		Department: department,
		Rating:     g.halfStepRating(),
		Bio: fmt.Sprintf(
			"Experienced %s professional with %d years of industry experience. Passionate about innovation and team collaboration.",
			strings.ToLower(department), g.rnd.Intn(10)+2,
		),
		Projects:           g.projects(p.ID, now),
		Feedback:           g.feedback(p.ID, now),
		PerformanceHistory: g.performance(p.ID, now),
	}
}

// NewHire builds the employee produced by the creation form.
func (g *Generator) NewHire(id int64, dto employee.CreateEmployeeDTO) employee.Employee {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	bio := dto.Bio
	if bio == "" {
		bio = fmt.Sprintf("New %s team member", strings.ToLower(dto.Department))
	}

	return employee.Employee{
		ID:         id,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      dto.Email,
		Age:        dto.Age,
		Phone:      dto.Phone,
		Address:    dto.ToAddress(),
		Image:      g.portrait(),
		Department: dto.Department,
		Rating:     employee.DefaultRating,
		Bio:        bio,
		Projects:   []employee.Project{},
		Feedback:   []employee.Feedback{},
		PerformanceHistory: []employee.PerformanceRecord{{
			ID:           fmt.Sprintf("perf-%d", now.UnixMilli()),
			Period:       quarterOf(now),
			Rating:       employee.DefaultRating,
			Goals:        []string{"Complete onboarding", "Learn team processes"},
			Achievements: []string{"Successfully joined the team"},
		}},
	}
}

// halfStepRating draws from [1, 5] rounded to the nearest 0.5.
func (g *Generator) halfStepRating() float64 {
	return math.Round((g.rnd.Float64()*4+1)*2) / 2
}

func (g *Generator) projects(owner int64, now time.Time) []employee.Project {
	n := g.rnd.Intn(4) + 1
	out := make([]employee.Project, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, employee.Project{
			ID:       fmt.Sprintf("proj-%d-%d", owner, i),
			Name:     fmt.Sprintf("Project %c", 'A'+i),
			Status:   employee.ProjectStatuses[g.rnd.Intn(len(employee.ProjectStatuses))],
			Progress: g.rnd.Intn(100),
			Deadline: now.Add(g.within(90 * 24 * time.Hour)).Format(dateLayout),
		})
	}
	return out
}

func (g *Generator) feedback(owner int64, now time.Time) []employee.Feedback {
	n := g.rnd.Intn(5) + 2
	out := make([]employee.Feedback, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, employee.Feedback{
			ID:      fmt.Sprintf("feedback-%d-%d", owner, i),
			Author:  fmt.Sprintf("Manager %d", i+1),
			Content: feedbackContent[g.rnd.Intn(len(feedbackContent))],
			Rating:  g.rnd.Intn(5) + 1,
			Date:    now.Add(-g.within(365 * 24 * time.Hour)).Format(dateLayout),
			Type:    employee.FeedbackTypes[g.rnd.Intn(len(employee.FeedbackTypes))],
		})
	}
	return out
}

// performance covers the four quarters of the previous year, newest first.
func (g *Generator) performance(owner int64, now time.Time) []employee.PerformanceRecord {
	year := now.Year() - 1
	out := make([]employee.PerformanceRecord, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, employee.PerformanceRecord{
			ID:           fmt.Sprintf("perf-%d-%d", owner, i),
			Period:       fmt.Sprintf("Q%d %d", 4-i, year),
			Rating:       g.halfStepRating(),
			Goals:        g.prefix(performanceGoals),
			Achievements: g.prefix(performanceAchievements),
		})
	}
	return out
}

// prefix returns the first 1 to 3 entries of list.
func (g *Generator) prefix(list []string) []string {
	return append([]string(nil), list[:g.rnd.Intn(3)+1]...)
}

func (g *Generator) within(d time.Duration) time.Duration {
	return time.Duration(g.rnd.Int63n(int64(d)))
}

func (g *Generator) portrait() string {
	return fmt.Sprintf(
		"https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&fit=crop",
		g.rnd.Intn(1000000), g.rnd.Intn(1000000),
	)
}

func quarterOf(t time.Time) string {
	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}
