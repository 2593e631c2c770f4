package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_OrdersByVersion(t *testing.T) {
	dir := t.TempDir()

	// lexical directory order (V10 before V2) must not leak into apply order
	writeMigration(t, dir, "V10__add_indexes.sql", "CREATE INDEX idx ON t (a);")
	writeMigration(t, dir, "V2__add_column.sql", "ALTER TABLE t ADD COLUMN a TEXT;")
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id BIGINT);")
	writeMigration(t, dir, "notes.txt", "not a migration")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	for i, want := range []int64{1, 2, 10} {
		if migs[i].Version != want {
			t.Fatalf("position %d: expected version %d, got %d", i, want, migs[i].Version)
		}
	}
	if migs[0].Name != "init" {
		t.Fatalf("unexpected name: %q", migs[0].Name)
	}
	for _, m := range migs {
		if len(m.Checksum) != 64 {
			t.Fatalf("expected sha256 hex checksum, got %q", m.Checksum)
		}
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	dir := t.TempDir()

	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id BIGINT);")
	writeMigration(t, dir, "V1__init_again.sql", "CREATE TABLE u (id BIGINT);")

	if _, err := loadMigrations(dir); err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	dir := t.TempDir()

	writeMigration(t, dir, "V1__init.sql", "   \n")

	if _, err := loadMigrations(dir); err == nil || !strings.Contains(err.Error(), "empty migration file") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}

func TestPendingMigrations_SkipsApplied(t *testing.T) {
	dir := t.TempDir()

	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id BIGINT);")
	writeMigration(t, dir, "V2__add_column.sql", "ALTER TABLE t ADD COLUMN a TEXT;")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pending, err := pendingMigrations(migs, map[int64]string{1: migs[0].Checksum})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pending) != 1 || pending[0].Version != 2 {
		t.Fatalf("expected only version 2 pending, got %+v", pending)
	}
}

func TestPendingMigrations_ChecksumMismatch(t *testing.T) {
	dir := t.TempDir()

	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id BIGINT);")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// the recorded checksum no longer matches the edited file
	if _, err := pendingMigrations(migs, map[int64]string{1: "deadbeef"}); err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch error, got %v", err)
	}
}
