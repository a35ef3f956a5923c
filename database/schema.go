package database

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var dropStatements = []string{
	`DROP TABLE IF EXISTS likes`,
	`DROP TABLE IF EXISTS comments`,
	`DROP TABLE IF EXISTS posts`,
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		likes INTEGER NOT NULL DEFAULT 0,
		likes_by TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		username TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS likes (
		post_id TEXT NOT NULL,
		username TEXT NOT NULL,
		liked_at TEXT NOT NULL,
		seq INTEGER NOT NULL,
		PRIMARY KEY (post_id, username)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments (post_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_post_seq ON likes (post_id, seq)`,
}

// ResetSchema drops and recreates every table. Data does not survive a restart.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset schema: %w", err)
		}
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	log.Info("Database schema recreated")
	return nil
}

// EnsureSchema creates missing tables and indexes and leaves existing data alone.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
