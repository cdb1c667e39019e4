package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
)

type JournalWriteCmd struct {
	Content string   `arg:"" help:"Entry text."`
	Date    string   `short:"d" help:"Entry day (YYYY-MM-DD), defaults to today."`
	Mood    string   `short:"m" help:"Mood (great|good|okay|bad|terrible)." default:"okay"`
	Tags    []string `short:"t" help:"Comma-separated tags."`
}

func (c *JournalWriteCmd) Validate() error {
	if !models.Mood(c.Mood).Valid() {
		return fmt.Errorf("invalid mood: %s", c.Mood)
	}
	return nil
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Date)
	if err != nil {
		return err
	}

	entry, err := ctx.Dashboard.UpsertJournalEntry(models.JournalEntry{
		Date:    day,
		Content: c.Content,
		Mood:    models.Mood(c.Mood),
		Tags:    c.Tags,
	})
	if err != nil {
		return ctx.report(err)
	}
	ctx.Notify.Success(fmt.Sprintf("Journal entry saved for %s (%s)", entry.Date, entry.Mood))
	return nil
}

type JournalListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries := ctx.Dashboard.JournalEntries
	if len(entries) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	shown := entries
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	for _, e := range shown {
		fmt.Printf("%s  %s  %s\n", e.Date, dates.DayName(e.Date), e.Mood)
		fmt.Printf("  %s\n", e.Content)
		if len(e.Tags) > 0 {
			fmt.Printf("  #%s\n", strings.Join(e.Tags, " #"))
		}
	}
	return nil
}
