package dashboard

import (
	"time"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// UpsertJournalEntry writes one day's journal record. When an entry for the
// same day key exists its content, mood, and tags are replaced in place,
// preserving the original id and creation time; otherwise a new entry is
// inserted at the front of the collection (most recent first).
func (d *Dashboard) UpsertJournalEntry(entry models.JournalEntry) (models.JournalEntry, error) {
	if err := validation.JournalEntry(entry); err != nil {
		return models.JournalEntry{}, err
	}

	for i, existing := range d.JournalEntries {
		if existing.Date != entry.Date {
			continue
		}

		updated := existing
		updated.Content = entry.Content
		updated.Mood = entry.Mood
		updated.Tags = entry.Tags

		entries := append([]models.JournalEntry(nil), d.JournalEntries...)
		entries[i] = updated
		d.JournalEntries = entries
		d.persistJournal()
		return updated, nil
	}

	entry.ID = newID()
	entry.CreatedAt = time.Now().UTC()
	d.JournalEntries = append([]models.JournalEntry{entry}, d.JournalEntries...)
	d.persistJournal()
	return entry, nil
}
