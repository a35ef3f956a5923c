package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"masterboxer.com/sns-api/models"
)

const postColumns = `id, username, content, created_at, updated_at, likes, likes_by`

func (q *Queries) InsertPost(ctx context.Context, p models.Post) error {
	likedBy, err := encodeLikedBy(p.LikedBy)
	if err != nil {
		return err
	}

	_, err = q.db.ExecContext(ctx, `
		INSERT INTO posts (id, username, content, created_at, updated_at, likes, likes_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID,
		p.Username,
		p.Content,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
		len(p.LikedBy),
		likedBy,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (q *Queries) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1`, id)
	return scanPostRow(row)
}

// LockPostByID reads the post and holds its row lock until the surrounding
// transaction ends. Outside a transaction it behaves like FindPostByID.
func (q *Queries) LockPostByID(ctx context.Context, id string) (models.Post, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1`+q.dialect.ForUpdate(), id)
	return scanPostRow(row)
}

func (q *Queries) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (q *Queries) ListPostIDs(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id FROM posts ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list post ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan post id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (q *Queries) UpdatePostContent(ctx context.Context, id, content string, updatedAt time.Time) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE posts
		SET content = $1, updated_at = $2
		WHERE id = $3`,
		content, formatTime(updatedAt), id)
	if err != nil {
		return fmt.Errorf("update post content: %w", err)
	}
	return expectOne(res)
}

// SetPostLikes overwrites the materialized like list and its count together.
func (q *Queries) SetPostLikes(ctx context.Context, id string, likedBy []string) error {
	encoded, err := encodeLikedBy(likedBy)
	if err != nil {
		return err
	}

	res, err := q.db.ExecContext(ctx, `
		UPDATE posts
		SET likes = $1, likes_by = $2
		WHERE id = $3`,
		len(likedBy), encoded, id)
	if err != nil {
		return fmt.Errorf("set post likes: %w", err)
	}
	return expectOne(res)
}

func (q *Queries) DeletePost(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return expectOne(res)
}

func scanPostRow(row *sql.Row) (models.Post, error) {
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrNotFound
	}
	return p, err
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		p                    models.Post
		createdAt, updatedAt string
		likedBy              string
	)
	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Content,
		&createdAt,
		&updatedAt,
		&p.LikesCount,
		&likedBy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, err
		}
		return models.Post{}, fmt.Errorf("scan post: %w", err)
	}

	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Post{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Post{}, err
	}
	if err := json.Unmarshal([]byte(likedBy), &p.LikedBy); err != nil {
		return models.Post{}, fmt.Errorf("decode likes_by for post %s: %w", p.ID, err)
	}
	if p.LikedBy == nil {
		p.LikedBy = []string{}
	}
	return p, nil
}

func encodeLikedBy(likedBy []string) (string, error) {
	if likedBy == nil {
		likedBy = []string{}
	}
	b, err := json.Marshal(likedBy)
	if err != nil {
		return "", fmt.Errorf("encode likes_by: %w", err)
	}
	return string(b), nil
}

func expectOne(res sql.Result) error {
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
