package main

import "testing"

func TestResolveDatabasePathMatchesServerKey(t *testing.T) {
	t.Setenv("DB_DATABASE", "shared.db")

	if got := resolveDatabasePath(""); got != "shared.db" {
		t.Fatalf("path = %q, want the DB_DATABASE value", got)
	}
	if got := resolveDatabasePath("override.db"); got != "override.db" {
		t.Fatalf("path = %q, flag must win over the environment", got)
	}

	t.Setenv("DB_DATABASE", "")
	if got := resolveDatabasePath(""); got != "deepfind.db" {
		t.Fatalf("path = %q, want the default database file", got)
	}
}
