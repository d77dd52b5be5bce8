package employee

import (
	"math"
	"strings"
)

const (
	MinRating     = 1.0
	MaxRating     = 5.0
	PromotionStep = 0.5
	DefaultRating = 3.5
)

const (
	DepartmentEngineering = "Engineering"
	DepartmentMarketing   = "Marketing"
	DepartmentSales       = "Sales"
	DepartmentHR          = "HR"
	DepartmentFinance     = "Finance"
	DepartmentOperations  = "Operations"
	DepartmentDesign      = "Design"
)

// Departments is the fixed set an employee can belong to.
var Departments = []string{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
	DepartmentDesign,
}

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPending   ProjectStatus = "pending"
)

var ProjectStatuses = []ProjectStatus{ProjectStatusActive, ProjectStatusCompleted, ProjectStatusPending}

type FeedbackType string

const (
	FeedbackTypePositive     FeedbackType = "positive"
	FeedbackTypeConstructive FeedbackType = "constructive"
	FeedbackTypeNeutral      FeedbackType = "neutral"
)

var FeedbackTypes = []FeedbackType{FeedbackTypePositive, FeedbackTypeConstructive, FeedbackTypeNeutral}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Project struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   ProjectStatus `json:"status"`
	Progress int           `json:"progress"`
	Deadline string        `json:"deadline"`
}

type Feedback struct {
	ID      string       `json:"id"`
	Author  string       `json:"author"`
	Content string       `json:"content"`
	Rating  int          `json:"rating"`
	Date    string       `json:"date"`
	Type    FeedbackType `json:"type"`
}

type PerformanceRecord struct {
	ID           string   `json:"id"`
	Period       string   `json:"period"`
	Rating       float64  `json:"rating"`
	Goals        []string `json:"goals"`
	Achievements []string `json:"achievements"`
}

type Employee struct {
	ID                 int64               `json:"id"`
	FirstName          string              `json:"first_name"`
	LastName           string              `json:"last_name"`
	Email              string              `json:"email"`
	Age                int                 `json:"age"`
	Phone              string              `json:"phone"`
	Address            Address             `json:"address"`
	Image              string              `json:"image"`
	Department         string              `json:"department"`
	Rating             float64             `json:"rating"`
	Bio                string              `json:"bio"`
	Projects           []Project           `json:"projects"`
	Feedback           []Feedback          `json:"feedback"`
	PerformanceHistory []PerformanceRecord `json:"performance_history"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// RatingFloor is the integer band used by the rating filter.
func (e *Employee) RatingFloor() int {
	return int(math.Floor(e.Rating))
}

func (e *Employee) IsTopPerformer() bool {
	return e.Rating >= 4.5
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// first name, last name, email or department. An empty query matches.
func (e *Employee) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{e.FirstName, e.LastName, e.Email, e.Department} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Promoted returns a copy with the rating raised by one step, clamped at MaxRating.
func (e Employee) Promoted() Employee {
	e.Rating = PromotedRating(e.Rating)
	return e
}

func PromotedRating(rating float64) float64 {
	return math.Min(MaxRating, rating+PromotionStep)
}

func IsValidDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

// MaxID returns the highest id in the collection, or 0 when it is empty.
func MaxID(employees []Employee) int64 {
	var max int64
	for _, e := range employees {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}
