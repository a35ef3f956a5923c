package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"masterboxer.com/sns-api/models"
)

const commentColumns = `id, post_id, username, content, created_at, updated_at`

func (q *Queries) InsertComment(ctx context.Context, c models.Comment) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, username, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID,
		c.PostID,
		c.Username,
		c.Content,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// FindCommentByPostAndID only matches when the comment belongs to postID.
func (q *Queries) FindCommentByPostAndID(ctx context.Context, postID, commentID string) (models.Comment, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE id = $1 AND post_id = $2`,
		commentID, postID)

	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrNotFound
	}
	return c, err
}

func (q *Queries) FindCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC`,
		postID)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (q *Queries) UpdateCommentContent(ctx context.Context, commentID, content string, updatedAt time.Time) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE comments
		SET content = $1, updated_at = $2
		WHERE id = $3`,
		content, formatTime(updatedAt), commentID)
	if err != nil {
		return fmt.Errorf("update comment content: %w", err)
	}
	return expectOne(res)
}

func (q *Queries) DeleteComment(ctx context.Context, commentID string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return expectOne(res)
}

func (q *Queries) DeleteCommentsForPost(ctx context.Context, postID string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("delete comments for post: %w", err)
	}
	return rowsAffected(res)
}

func (q *Queries) CountCommentsForPost(ctx context.Context, postID string) (int, error) {
	var count int
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var (
		c                    models.Comment
		createdAt, updatedAt string
	)
	if err := row.Scan(&c.ID, &c.PostID, &c.Username, &c.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, err
		}
		return models.Comment{}, fmt.Errorf("scan comment: %w", err)
	}

	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Comment{}, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}
