package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifedash/internal/backup"
)

type ExportCmd struct {
	Output string `short:"o" help:"Destination file, defaults to a dated name in the current directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	now := time.Now()
	data, err := backup.Export(ctx.Dashboard, now)
	if err != nil {
		return err
	}

	path := c.Output
	if path == "" {
		path = backup.Filename(now)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.Notify.Success(fmt.Sprintf("Exported to %s", path))
	return nil
}

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Backup file to import."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	if err := ctx.report(backup.Import(ctx.Dashboard, data)); err != nil {
		return err
	}
	ctx.Notify.Success(fmt.Sprintf("Imported %s", c.File))
	return nil
}

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Delete all habits, journal entries, expenses, health logs, goals, and tasks?").
			Description("Settings are kept. This cannot be undone.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.Dashboard.ClearAll()
	ctx.Notify.Success("All data cleared")
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.DataPath)
	path, err := manager.CreateBackup(ctx.Dashboard, time.Now())
	if err != nil {
		return err
	}
	ctx.Notify.Success(fmt.Sprintf("Backup written to %s", path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.DataPath)
	backups, err := manager.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups yet.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %8d bytes  %s\n", b.ModTime.Format("2006-01-02 15:04:05"), b.Size, filepath.Base(b.Path))
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup filename or path; bare names resolve inside the backup directory."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.DataPath)

	path := c.File
	if !strings.ContainsRune(path, os.PathSeparator) {
		path = filepath.Join(manager.BackupDir(), path)
	}

	if err := ctx.report(manager.RestoreBackup(ctx.Dashboard, path)); err != nil {
		return err
	}
	ctx.Notify.Success(fmt.Sprintf("Restored from %s", filepath.Base(path)))
	return nil
}
