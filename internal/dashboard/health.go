package dashboard

import (
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// UpsertHealthLog writes one day's health metrics. When a log for the same
// day key exists every field is replaced wholesale while the existing id is
// kept; otherwise a new log is inserted at the front of the collection.
func (d *Dashboard) UpsertHealthLog(logEntry models.HealthLog) (models.HealthLog, error) {
	if err := validation.HealthLog(logEntry); err != nil {
		return models.HealthLog{}, err
	}

	for i, existing := range d.HealthLogs {
		if existing.Date != logEntry.Date {
			continue
		}

		logEntry.ID = existing.ID
		logs := append([]models.HealthLog(nil), d.HealthLogs...)
		logs[i] = logEntry
		d.HealthLogs = logs
		d.persistHealth()
		return logEntry, nil
	}

	logEntry.ID = newID()
	d.HealthLogs = append([]models.HealthLog{logEntry}, d.HealthLogs...)
	d.persistHealth()
	return logEntry, nil
}
