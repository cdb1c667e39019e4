package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/storage"
)

func TestManager_CreateAndList(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "lifedash.json")
	d := seededDashboard(t)
	m := NewManager(dataPath)

	path, err := m.CreateBackup(d, testNow)
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Base(path) != Filename(testNow) {
		t.Errorf("backup filename = %s, want %s", filepath.Base(path), Filename(testNow))
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("backup count = %d, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestManager_SameDayBackupsGetUniqueNames(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "lifedash.json")
	d := seededDashboard(t)
	m := NewManager(dataPath)

	first, err := m.CreateBackup(d, testNow)
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := m.CreateBackup(d, testNow)
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Errorf("same-day backups share path %s", first)
	}
}

func TestManager_Rotation(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "lifedash.json")
	d := seededDashboard(t)
	m := NewManager(dataPath)

	// Seed more dated files than the retention limit allows.
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < MaxBackups+3; i++ {
		name := Filename(base.AddDate(0, 0, i))
		p := filepath.Join(m.BackupDir(), name)
		if err := os.WriteFile(p, []byte("{}"), 0600); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}

	if _, err := m.CreateBackup(d, testNow); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("backup count after rotation = %d, want <= %d", len(backups), MaxBackups)
	}
}

func TestManager_ListIgnoresForeignFiles(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "lifedash.json")
	m := NewManager(dataPath)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(m.BackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("foreign files were listed: %+v", backups)
	}
}

func TestManager_RestoreBackup(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "lifedash.json")
	d := seededDashboard(t)
	m := NewManager(dataPath)

	path, err := m.CreateBackup(d, testNow)
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Wipe and restore into a fresh dashboard.
	fresh := dashboard.Open(storage.NewMemStore())
	if err := m.RestoreBackup(fresh, path); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if len(fresh.Habits) != 1 || fresh.Habits[0].Name != "Read" {
		t.Errorf("restored habits = %+v", fresh.Habits)
	}

	// The restore wrote a safety backup of the pre-restore state.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("backup count after restore = %d, want the safety backup too", len(backups))
	}

	// A corrupt file must leave the dashboard untouched.
	bad := filepath.Join(m.BackupDir(), "life-dashboard-backup-corrupt.json")
	if err := os.WriteFile(bad, []byte("[broken"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := m.RestoreBackup(fresh, bad); err == nil {
		t.Error("expected restore of corrupt file to fail")
	} else if !strings.Contains(err.Error(), "import failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if len(fresh.Habits) != 1 {
		t.Error("failed restore modified the dashboard")
	}
}
