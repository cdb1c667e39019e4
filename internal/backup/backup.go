// Package backup serializes the whole dashboard to a single JSON document
// and restores it. Field names are stable: they match the collection
// attribute names, so backups are portable across versions.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// Document is the on-disk backup format.
type Document struct {
	Habits         []models.Habit        `json:"habits"`
	JournalEntries []models.JournalEntry `json:"journalEntries"`
	Expenses       []models.Expense      `json:"expenses"`
	HealthLogs     []models.HealthLog    `json:"healthLogs"`
	Goals          []models.Goal         `json:"goals"`
	Tasks          []models.Task         `json:"tasks"`
	Settings       models.Settings       `json:"settings"`
	ExportedAt     string                `json:"exportedAt"` // RFC 3339
}

// ImportError reports a backup document that could not be applied. The
// dashboard is left untouched when one is returned.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

func (e *ImportError) Unwrap() error { return e.Err }

// Filename returns the default export filename for now's date.
func Filename(now time.Time) string {
	return fmt.Sprintf("life-dashboard-backup-%s.json", dates.DayKey(now))
}

// Export serializes every collection plus settings and an export timestamp.
func Export(d *dashboard.Dashboard, now time.Time) ([]byte, error) {
	doc := Document{
		Habits:         d.Habits,
		JournalEntries: d.JournalEntries,
		Expenses:       d.Expenses,
		HealthLogs:     d.HealthLogs,
		Goals:          d.Goals,
		Tasks:          d.Tasks,
		Settings:       d.Settings,
		ExportedAt:     now.Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// importDoc mirrors Document with pointer fields so an absent key can be
// told apart from an empty collection.
type importDoc struct {
	Habits         *[]models.Habit        `json:"habits"`
	JournalEntries *[]models.JournalEntry `json:"journalEntries"`
	Expenses       *[]models.Expense      `json:"expenses"`
	HealthLogs     *[]models.HealthLog    `json:"healthLogs"`
	Goals          *[]models.Goal         `json:"goals"`
	Tasks          *[]models.Task         `json:"tasks"`
	Settings       *models.Settings       `json:"settings"`
}

// Import parses a backup document and overwrites every collection it
// contains. Absent fields leave the current collection untouched. Every
// entry is validated before anything is replaced; the first violation
// rejects the whole import, so a malformed document can never be partially
// applied.
func Import(d *dashboard.Dashboard, data []byte) error {
	// The top-level value must be a JSON object. Unmarshaling "null" into a
	// map succeeds with a nil map, so check for that explicitly.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return &ImportError{Reason: "not a JSON object", Err: err}
	}
	if top == nil {
		return &ImportError{Reason: "not a JSON object"}
	}

	var doc importDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ImportError{Reason: "malformed backup document", Err: err}
	}

	if err := validateDoc(doc); err != nil {
		return err
	}

	d.Replace(dashboard.Replacement{
		Habits:         doc.Habits,
		JournalEntries: doc.JournalEntries,
		Expenses:       doc.Expenses,
		HealthLogs:     doc.HealthLogs,
		Goals:          doc.Goals,
		Tasks:          doc.Tasks,
		Settings:       doc.Settings,
	})
	return nil
}

func validateDoc(doc importDoc) error {
	if doc.Habits != nil {
		for i, h := range *doc.Habits {
			if err := validation.Habit(h); err != nil {
				return &ImportError{Reason: fmt.Sprintf("habits[%d]", i), Err: err}
			}
		}
	}
	if doc.JournalEntries != nil {
		for i, e := range *doc.JournalEntries {
			if err := validation.JournalEntry(e); err != nil {
				return &ImportError{Reason: fmt.Sprintf("journalEntries[%d]", i), Err: err}
			}
		}
	}
	if doc.Expenses != nil {
		for i, e := range *doc.Expenses {
			if err := validation.Expense(e); err != nil {
				return &ImportError{Reason: fmt.Sprintf("expenses[%d]", i), Err: err}
			}
		}
	}
	if doc.HealthLogs != nil {
		for i, l := range *doc.HealthLogs {
			if err := validation.HealthLog(l); err != nil {
				return &ImportError{Reason: fmt.Sprintf("healthLogs[%d]", i), Err: err}
			}
		}
	}
	if doc.Goals != nil {
		for i, g := range *doc.Goals {
			if err := validation.Goal(g); err != nil {
				return &ImportError{Reason: fmt.Sprintf("goals[%d]", i), Err: err}
			}
		}
	}
	if doc.Tasks != nil {
		for i, t := range *doc.Tasks {
			if err := validation.Task(t); err != nil {
				return &ImportError{Reason: fmt.Sprintf("tasks[%d]", i), Err: err}
			}
		}
	}
	if doc.Settings != nil {
		if err := validation.Settings(*doc.Settings); err != nil {
			return &ImportError{Reason: "settings", Err: err}
		}
	}
	return nil
}
