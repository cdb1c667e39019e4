package cli

import (
	"fmt"

	"github.com/julianstephens/lifedash/internal/models"
)

type HealthLogCmd struct {
	Date     string  `short:"d" help:"Day (YYYY-MM-DD), defaults to today."`
	Steps    int     `help:"Steps walked." default:"0"`
	Sleep    float64 `help:"Hours slept." default:"0"`
	Water    int     `help:"Glasses of water." default:"0"`
	Calories int     `help:"Calories consumed." default:"0"`
}

func (c *HealthLogCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Date)
	if err != nil {
		return err
	}

	logEntry, err := ctx.Dashboard.UpsertHealthLog(models.HealthLog{
		Date:     day,
		Steps:    c.Steps,
		Sleep:    c.Sleep,
		Water:    c.Water,
		Calories: c.Calories,
	})
	if err != nil {
		return ctx.report(err)
	}
	ctx.Notify.Success(fmt.Sprintf("Health log saved for %s: %d steps, %.1fh sleep, %d water, %d kcal",
		logEntry.Date, logEntry.Steps, logEntry.Sleep, logEntry.Water, logEntry.Calories))
	return nil
}

type HealthListCmd struct {
	Limit int `short:"n" help:"Show at most this many logs." default:"7"`
}

func (c *HealthListCmd) Run(ctx *Context) error {
	logs := ctx.Dashboard.HealthLogs
	if len(logs) == 0 {
		fmt.Println("No health logs yet.")
		return nil
	}

	shown := logs
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, l := range shown {
		fmt.Printf("%s  steps %6d  sleep %4.1fh  water %2d  kcal %5d\n",
			l.Date, l.Steps, l.Sleep, l.Water, l.Calories)
	}
	return nil
}
