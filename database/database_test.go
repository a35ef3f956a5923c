package database

import (
	"context"
	"testing"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		driver  string
		want    Dialect
		wantErr bool
	}{
		{"sqlite3", SQLite, false},
		{"sqlite", SQLite, false},
		{"postgres", Postgres, false},
		{"pgx", PGX, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := ParseDialect(tt.driver)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: want error=%t got=%v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("dialect: want=%q got=%q", tt.want, got)
			}
		})
	}
}

func TestForUpdate(t *testing.T) {
	if SQLite.ForUpdate() != "" {
		t.Fatalf("sqlite should not emit a row lock clause")
	}
	if Postgres.ForUpdate() != " FOR UPDATE" {
		t.Fatalf("postgres: got %q", Postgres.ForUpdate())
	}
}

func TestResetSchemaDropsData(t *testing.T) {
	db, err := Open(SQLite, ":memory:", 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := ResetSchema(ctx, db); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO likes (post_id, username, liked_at) VALUES ($1, $2, $3)`,
		"p1", "alice", "2024-01-28T10:30:00.000000Z"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := ResetSchema(ctx, db); err != nil {
		t.Fatalf("second reset: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("likes after reset: want=0 got=%d", count)
	}
}
