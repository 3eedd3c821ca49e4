package postgres

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	raw := "CREATE TABLE a (id TEXT);\n\n  ALTER TABLE a ADD COLUMN b TEXT ;\n"
	got := splitStatements(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(got), got)
	}
	if got[0] != "CREATE TABLE a (id TEXT)" || got[1] != "ALTER TABLE a ADD COLUMN b TEXT" {
		t.Fatalf("unexpected statements: %q", got)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	var claim bool
	for _, e := range entries {
		raw, err := migrationFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		if len(splitStatements(string(raw))) == 0 {
			t.Fatalf("migration %s has no statements", e.Name())
		}
		if strings.Contains(string(raw), "pending_action") {
			claim = true
		}
	}
	if !claim {
		t.Fatalf("expected a migration adding the escrow claim columns")
	}
}
