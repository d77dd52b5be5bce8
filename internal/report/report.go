// Package report renders the analytics views as terminal tables.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/frahmantamala/hr-dashboard/internal/store"
)

// Theme is the palette the tables are drawn with.
type Theme struct {
	Foreground lipgloss.Color
	Header     lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1f2937"),
		Header:     lipgloss.Color("#1d4ed8"),
		Border:     lipgloss.Color("#d1d5db"),
		Accent:     lipgloss.Color("#15803d"),
	}
}

func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f3f4f6"),
		Header:     lipgloss.Color("#93c5fd"),
		Border:     lipgloss.Color("#374151"),
		Accent:     lipgloss.Color("#86efac"),
		IsDark:     true,
	}
}

// ThemeFor picks the palette matching the persisted dark-mode flag.
func ThemeFor(darkMode bool) Theme {
	if darkMode {
		return DarkTheme()
	}
	return LightTheme()
}

// Source is the subset of the derived views a report reads.
type Source interface {
	Summary() store.Summary
	DepartmentStats() []store.DepartmentStats
	RatingDistribution() []store.RatingBucket
}

type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

func (r *Renderer) newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(r.theme.Header).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Foreground).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func (r *Renderer) Summary(s store.Summary) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(r.theme.Accent)
	return title.Render(fmt.Sprintf(
		"%d employees | %d departments | avg rating %.2f | %d top performers | %d bookmarked",
		s.TotalEmployees, s.Departments, s.AverageRating, s.TopPerformers, s.BookmarkedCount,
	))
}

func (r *Renderer) Departments(stats []store.DepartmentStats) string {
	t := r.newTable("Department", "Employees", "Avg Rating", "Top Performers")
	for _, d := range stats {
		t.Row(d.Department, fmt.Sprint(d.Count), fmt.Sprintf("%.2f", d.AverageRating), fmt.Sprint(d.TopPerformers))
	}
	return t.String()
}

func (r *Renderer) Ratings(buckets []store.RatingBucket) string {
	t := r.newTable("Band", "Range", "Employees")
	for _, b := range buckets {
		t.Row(b.Label, b.Range, fmt.Sprint(b.Count))
	}
	return t.String()
}

// Render lays out the summary line followed by both tables.
func (r *Renderer) Render(src Source) string {
	var b strings.Builder
	b.WriteString(r.Summary(src.Summary()))
	b.WriteString("\n\n")
	b.WriteString(r.Departments(src.DepartmentStats()))
	b.WriteString("\n\n")
	b.WriteString(r.Ratings(src.RatingDistribution()))
	b.WriteString("\n")
	return b.String()
}
