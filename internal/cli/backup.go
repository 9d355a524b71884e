package cli

import (
	"fmt"
	"path/filepath"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	path, err := ctx.Backup.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	backups, err := ctx.Backup.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file to restore, name or full path."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	path := c.File
	if filepath.Dir(path) == "." {
		path = filepath.Join(ctx.Backup.Dir(), path)
	}
	if err := ctx.Backup.Restore(path); err != nil {
		return err
	}
	fmt.Println("Database restored.")
	return nil
}
