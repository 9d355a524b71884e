package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) (string, *Manager) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "gymtasks.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("CREATE TABLE marker (value TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO marker (value) VALUES ('original')"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	return dbPath, NewManager(dbPath)
}

func markerValue(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	var v string
	if err := db.QueryRow("SELECT value FROM marker").Scan(&v); err != nil {
		t.Fatalf("failed to read marker: %v", err)
	}
	return v
}

func TestCreateSnapshot(t *testing.T) {
	_, m := setupDB(t)

	path, err := m.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if markerValue(t, path) != "original" {
		t.Error("backup does not contain the source data")
	}
}

func TestCreateFailsWithoutDatabase(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.Create(); err == nil {
		t.Error("expected an error for a missing database")
	}
}

func TestListNewestFirst(t *testing.T) {
	_, m := setupDB(t)

	if _, err := m.Create(); err != nil {
		t.Fatalf("failed to create first backup: %v", err)
	}
	if _, err := m.Create(); err != nil {
		t.Fatalf("failed to create second backup: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if backups[0].Timestamp.Before(backups[1].Timestamp) {
		t.Error("expected newest backup first")
	}
}

func TestListEmptyWithoutDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "gymtasks.db"))
	backups, err := m.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	_, m := setupDB(t)
	if _, err := m.Create(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	for _, name := range []string{"notes.txt", "other-20250601-120000.db", "gymtasks-garbage.db"} {
		if err := os.WriteFile(filepath.Join(m.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	dbPath, m := setupDB(t)

	snapshot, err := m.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("UPDATE marker SET value = 'changed'"); err != nil {
		t.Fatalf("failed to update: %v", err)
	}
	db.Close()

	if err := m.Restore(snapshot); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}
	if got := markerValue(t, dbPath); got != "original" {
		t.Errorf("expected restored value original, got %s", got)
	}
}

func TestRestoreRejectsMissingFile(t *testing.T) {
	dbPath, m := setupDB(t)
	if err := m.Restore(filepath.Join(filepath.Dir(dbPath), "nope.db")); err == nil {
		t.Error("expected an error for a missing backup file")
	}
}

func TestRestoreRejectsCorruptFile(t *testing.T) {
	_, m := setupDB(t)
	bad := filepath.Join(t.TempDir(), "bad.db")
	if err := os.WriteFile(bad, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := m.Restore(bad); err == nil {
		t.Error("expected an error for a corrupt backup file")
	}
}
