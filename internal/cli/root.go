package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifedash/internal/backup"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/notify"
	"github.com/julianstephens/lifedash/internal/validation"
)

// Context is handed to every command's Run method.
type Context struct {
	Dashboard *dashboard.Dashboard
	Notify    notify.Notifier
	DataPath  string
}

// report converts recoverable errors into user notifications. Validation and
// import failures never escalate past the operation boundary; anything else
// propagates to main.
func (c *Context) report(err error) error {
	if err == nil {
		return nil
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		c.Notify.Error(verr.Error())
		return nil
	}
	var ierr *backup.ImportError
	if errors.As(err, &ierr) {
		c.Notify.Error(ierr.Error())
		return nil
	}
	return err
}

// dayOrToday returns the given day key, defaulting to today, and rejects
// malformed keys.
func dayOrToday(day string) (string, error) {
	if day == "" {
		return dates.Today(), nil
	}
	if dates.DayName(day) == "" {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", day)
	}
	return day, nil
}
