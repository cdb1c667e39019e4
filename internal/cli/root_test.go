package cli

import (
	"errors"
	"testing"

	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/validation"
)

type captureNotifier struct {
	successes []string
	errors    []string
}

func (c *captureNotifier) Success(message string) { c.successes = append(c.successes, message) }
func (c *captureNotifier) Error(message string)   { c.errors = append(c.errors, message) }

func testContext(t *testing.T) (*Context, *captureNotifier) {
	t.Helper()
	notifier := &captureNotifier{}
	return &Context{
		Dashboard: dashboard.Open(storage.NewMemStore()),
		Notify:    notifier,
		DataPath:  t.TempDir() + "/lifedash.json",
	}, notifier
}

func TestReport_ValidationErrorBecomesNotification(t *testing.T) {
	ctx, notifier := testContext(t)

	err := ctx.report(&validation.Error{Field: "name", Message: "cannot be empty"})
	if err != nil {
		t.Fatalf("validation error escaped the boundary: %v", err)
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("got %d error notifications, want 1", len(notifier.errors))
	}
}

func TestReport_UnknownErrorPropagates(t *testing.T) {
	ctx, _ := testContext(t)

	boom := errors.New("disk on fire")
	if err := ctx.report(boom); !errors.Is(err, boom) {
		t.Errorf("got %v, want original error", err)
	}
}

func TestDayOrToday(t *testing.T) {
	day, err := dayOrToday("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != dates.Today() {
		t.Errorf("got %q, want today", day)
	}

	if _, err := dayOrToday("not-a-date"); err == nil {
		t.Error("expected error for malformed day key")
	}

	day, err = dayOrToday("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "2024-03-15" {
		t.Errorf("got %q, want passthrough", day)
	}
}

func TestFindHabit_ByNameAndID(t *testing.T) {
	ctx, _ := testContext(t)

	created, err := ctx.Dashboard.AddHabit("Read", "📚", "blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h, ok := findHabit(ctx, "Read"); !ok || h.ID != created.ID {
		t.Error("lookup by name failed")
	}
	if h, ok := findHabit(ctx, created.ID); !ok || h.Name != "Read" {
		t.Error("lookup by id failed")
	}
	if _, ok := findHabit(ctx, "nope"); ok {
		t.Error("lookup of unknown habit succeeded")
	}
}
