package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifedash/internal/analytics"
	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/quotes"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	d := ctx.Dashboard
	now := time.Now()

	fmt.Printf("%s, %s!\n", dates.Greeting(now), d.Settings.FirstName)
	fmt.Printf("%q\n\n", quotes.Daily(now))

	if d.ModuleEnabled(constants.ModuleHabits) {
		fmt.Printf("Habits:   %d tracked, longest streak %d\n",
			len(d.Habits), analytics.LongestStreak(d.Habits, now))
	}
	if d.ModuleEnabled(constants.ModuleTasks) {
		fmt.Printf("Tasks:    %d total, %d%% done\n",
			len(d.Tasks), analytics.TaskCompletionRate(d.Tasks))
	}
	if d.ModuleEnabled(constants.ModuleJournal) {
		fmt.Printf("Journal:  %d entries across %d days\n",
			len(d.JournalEntries), analytics.JournalDays(d.JournalEntries))
		dist := analytics.MoodDistribution(d.JournalEntries)
		fmt.Print("          moods:")
		for _, m := range models.Moods {
			fmt.Printf(" %s=%d", m, dist[m])
		}
		fmt.Println()
	}
	if d.ModuleEnabled(constants.ModuleHealth) {
		fmt.Printf("Health:   %d logs, avg %d steps/day\n",
			len(d.HealthLogs), analytics.AverageSteps(d.HealthLogs))
	}
	if d.ModuleEnabled(constants.ModuleFinance) {
		summary := analytics.MonthlySummary(d.Expenses, now)
		fmt.Printf("Finance:  %s net this month (+%s / -%s)\n",
			summary.Net.StringFixed(2), summary.Income.StringFixed(2), summary.Expenses.StringFixed(2))
	}
	if d.ModuleEnabled(constants.ModuleGoals) {
		fmt.Printf("Goals:    %d active\n", len(d.Goals))
	}

	insights := analytics.BuildInsights(d.Habits, d.Tasks, d.JournalEntries, d.HealthLogs, now)
	fmt.Println("\nInsights:")
	printInsight(insights.StreakOnFire, "Habit streak is on fire")
	printInsight(insights.TasksOnTrack, "Tasks are on track")
	printInsight(insights.JournalConsistent, "Journaling is consistent")
	printInsight(insights.StepsActive, "Daily steps are above target")
	return nil
}

func printInsight(set bool, label string) {
	mark := "·"
	if set {
		mark = "★"
	}
	fmt.Printf("  %s %s\n", mark, label)
}

type QuoteCmd struct {
	Random bool `short:"r" help:"Pick a random quote instead of today's."`
}

func (c *QuoteCmd) Run(ctx *Context) error {
	if c.Random {
		fmt.Println(quotes.Random())
		return nil
	}
	fmt.Println(quotes.Daily(time.Now()))
	return nil
}
