package statsview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/analytics"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	insightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
)

type Model struct {
	viewport  viewport.Model
	dashboard *dashboard.Dashboard
	width     int
	height    int
}

func New(d *dashboard.Dashboard, width, height int) Model {
	vp := viewport.New(width, height)
	m := Model{viewport: vp, dashboard: d}
	m.Render()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.dashboard == nil {
		return "No data loaded."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) Render() {
	if m.dashboard == nil {
		m.viewport.SetContent("No data loaded.")
		return
	}

	d := m.dashboard
	now := time.Now()
	var b strings.Builder

	b.WriteString(headingStyle.Render("This week") + "\n")
	for _, p := range analytics.HabitCompletionSeries(d.Habits, now, 7) {
		bar := strings.Repeat("█", p.Rate/10)
		b.WriteString(fmt.Sprintf("%s %3d%% %s\n", labelStyle.Render(dates.DayName(p.Day)), p.Rate, bar))
	}

	b.WriteString("\n" + headingStyle.Render("Totals") + "\n")
	b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Streak"), analytics.LongestStreak(d.Habits, now)))
	b.WriteString(fmt.Sprintf("%s %d%%\n", labelStyle.Render("Tasks"), analytics.TaskCompletionRate(d.Tasks)))
	b.WriteString(fmt.Sprintf("%s %d days\n", labelStyle.Render("Journal"), analytics.JournalDays(d.JournalEntries)))
	b.WriteString(fmt.Sprintf("%s %d/day\n", labelStyle.Render("Steps"), analytics.AverageSteps(d.HealthLogs)))

	summary := analytics.MonthlySummary(d.Expenses, now)
	b.WriteString(fmt.Sprintf("%s %s net\n", labelStyle.Render("Money"), summary.Net.StringFixed(2)))

	dist := analytics.MoodDistribution(d.JournalEntries)
	parts := make([]string, 0, len(models.Moods))
	for _, mood := range models.Moods {
		parts = append(parts, fmt.Sprintf("%s %d", mood, dist[mood]))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Moods"), strings.Join(parts, "  ")))

	insights := analytics.BuildInsights(d.Habits, d.Tasks, d.JournalEntries, d.HealthLogs, now)
	var lines []string
	if insights.StreakOnFire {
		lines = append(lines, "🔥 Habit streak is on fire")
	}
	if insights.TasksOnTrack {
		lines = append(lines, "🎯 Tasks are on track")
	}
	if insights.JournalConsistent {
		lines = append(lines, "📓 Journaling is consistent")
	}
	if insights.StepsActive {
		lines = append(lines, "👟 Daily steps are above target")
	}
	if len(lines) > 0 {
		b.WriteString("\n" + headingStyle.Render("Insights") + "\n")
		for _, line := range lines {
			b.WriteString(insightStyle.Render(line) + "\n")
		}
	}

	m.viewport.SetContent(b.String())
}
