package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/lifedash/internal/dashboard"
)

const (
	// MaxBackups is the number of backup files kept after rotation.
	MaxBackups = 14
	// BackupDirName is the directory created beside the data file.
	BackupDirName = "backups"
	// BackupFilePrefix and BackupFileSuffix frame every backup filename.
	BackupFilePrefix = "life-dashboard-backup-"
	BackupFileSuffix = ".json"
)

// Info describes one backup file on disk.
type Info struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// Manager writes, lists, rotates, and restores backup files in a directory
// beside the dashboard's data file.
type Manager struct {
	backupDir string
}

// NewManager creates a manager rooted next to the given data path.
func NewManager(dataPath string) *Manager {
	return &Manager{
		backupDir: filepath.Join(filepath.Dir(dataPath), BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// CreateBackup exports the dashboard to a new dated file and rotates old
// backups beyond the retention limit.
func (m *Manager) CreateBackup(d *dashboard.Dashboard, now time.Time) (string, error) {
	return m.createBackup(d, now, false)
}

func (m *Manager) createBackup(d *dashboard.Dashboard, now time.Time, skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := Export(d, now)
	if err != nil {
		return "", err
	}

	path := filepath.Join(m.backupDir, Filename(now))

	// Same-day backups get a time suffix, then a counter.
	if _, err := os.Stat(path); err == nil {
		stamped := fmt.Sprintf("%s%s-%s%s", BackupFilePrefix, now.Format("2006-01-02"), now.Format("150405"), BackupFileSuffix)
		path = filepath.Join(m.backupDir, stamped)
		counter := 1
		for {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			name := fmt.Sprintf("%s%s-%s-%d%s", BackupFilePrefix, now.Format("2006-01-02"), now.Format("150405"), counter, BackupFileSuffix)
			path = filepath.Join(m.backupDir, name)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			// Rotation failure should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return path, nil
}

// ListBackups returns every backup file, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:    filepath.Join(m.backupDir, name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime.After(backups[j].ModTime)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup imports a backup file into the dashboard. The current state
// is exported to a safety backup first, so a restore can itself be undone.
func (m *Manager) RestoreBackup(d *dashboard.Dashboard, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if _, err := m.createBackup(d, time.Now(), true); err != nil {
		return fmt.Errorf("failed to back up current state before restore: %w", err)
	}

	return Import(d, data)
}
