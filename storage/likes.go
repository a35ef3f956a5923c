package storage

import (
	"context"
	"fmt"

	"masterboxer.com/sns-api/models"
)

// InsertLike records that like.Username likes like.PostID. An existing record
// for the pair is left untouched and reported as inserted=false.
// seq numbers likes per post in insertion order; callers hold the post row
// lock so two inserts never compute the same value.
func (q *Queries) InsertLike(ctx context.Context, like models.Like) (inserted bool, err error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO likes (post_id, username, liked_at, seq)
		SELECT CAST($1 AS TEXT), CAST($2 AS TEXT), CAST($3 AS TEXT), COALESCE(MAX(seq), 0) + 1
		FROM likes
		WHERE post_id = $1
		ON CONFLICT (post_id, username) DO NOTHING`,
		like.PostID, like.Username, formatTime(like.LikedAt))
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (q *Queries) DeleteLike(ctx context.Context, postID, username string) (deleted bool, err error) {
	res, err := q.db.ExecContext(ctx, `
		DELETE FROM likes
		WHERE post_id = $1 AND username = $2`,
		postID, username)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// FindLikeUsernamesForPost returns likers in the order they liked the post.
func (q *Queries) FindLikeUsernamesForPost(ctx context.Context, postID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT username
		FROM likes
		WHERE post_id = $1
		ORDER BY seq ASC`,
		postID)
	if err != nil {
		return nil, fmt.Errorf("find likes: %w", err)
	}
	defer rows.Close()

	usernames := []string{}
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		usernames = append(usernames, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return usernames, nil
}

func (q *Queries) DeleteLikesForPost(ctx context.Context, postID string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("delete likes for post: %w", err)
	}
	return rowsAffected(res)
}
