package services

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/models"
	"masterboxer.com/sns-api/monitoring"
	"masterboxer.com/sns-api/storage"
)

// LikeService keeps the like records and the post's likes/likes_by columns in
// step. Every mutation locks the post row first and rebuilds likes_by from the
// like records, so two concurrent likes can never overwrite each other.
type LikeService struct {
	store *storage.Store
	now   func() time.Time
}

func NewLikeService(store *storage.Store) *LikeService {
	return &LikeService{store: store, now: now}
}

// AddLike is idempotent. likedAt is always the time of this call, not of the
// original like.
func (s *LikeService) AddLike(ctx context.Context, postID, username string) (models.Like, error) {
	like := models.Like{PostID: postID, Username: username, LikedAt: s.now()}

	var changed bool
	err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
		if _, err := q.LockPostByID(ctx, postID); err != nil {
			return postLookupErr(err)
		}

		var err error
		if changed, err = q.InsertLike(ctx, like); err != nil || !changed {
			return err
		}
		_, err = materializeLikes(ctx, q, postID)
		return err
	})
	if err != nil {
		return models.Like{}, err
	}

	monitoring.LikeMutations.WithLabelValues("add", strconv.FormatBool(changed)).Inc()
	log.WithFields(log.Fields{"post_id": postID, "username": username, "changed": changed}).Debug("Like added")
	return like, nil
}

// RemoveLike succeeds whether or not username currently likes the post.
func (s *LikeService) RemoveLike(ctx context.Context, postID, username string) error {
	var changed bool
	err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
		if _, err := q.LockPostByID(ctx, postID); err != nil {
			return postLookupErr(err)
		}

		var err error
		if changed, err = q.DeleteLike(ctx, postID, username); err != nil || !changed {
			return err
		}
		_, err = materializeLikes(ctx, q, postID)
		return err
	})
	if err != nil {
		return err
	}

	monitoring.LikeMutations.WithLabelValues("remove", strconv.FormatBool(changed)).Inc()
	log.WithFields(log.Fields{"post_id": postID, "username": username, "changed": changed}).Debug("Like removed")
	return nil
}

func (s *LikeService) ListLikes(ctx context.Context, postID string) (models.LikeSummary, error) {
	post, err := s.store.FindPostByID(ctx, postID)
	if err != nil {
		return models.LikeSummary{}, postLookupErr(err)
	}
	return models.LikeSummary{
		PostID:     post.ID,
		LikesCount: post.LikesCount,
		LikedBy:    post.LikedBy,
	}, nil
}

// Reconcile rewrites likes/likes_by for every post whose stored values differ
// from its like records and returns how many posts were repaired.
func (s *LikeService) Reconcile(ctx context.Context) (int, error) {
	ids, err := s.store.ListPostIDs(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, id := range ids {
		var fixed bool
		err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
			post, err := q.LockPostByID(ctx, id)
			if err != nil {
				return err
			}

			usernames, err := q.FindLikeUsernamesForPost(ctx, id)
			if err != nil {
				return err
			}
			if post.LikesCount == len(usernames) && slices.Equal(post.LikedBy, usernames) {
				return nil
			}

			log.WithFields(log.Fields{
				"post_id":      id,
				"stored_count": post.LikesCount,
				"actual_count": len(usernames),
			}).Warn("Repairing drifted like list")
			fixed = true
			return q.SetPostLikes(ctx, id, usernames)
		})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Deleted since ListPostIDs ran.
				continue
			}
			return repaired, err
		}
		if fixed {
			repaired++
			monitoring.LikeRepairs.Inc()
		}
	}
	return repaired, nil
}

// materializeLikes rebuilds the post's likes_by/likes from the like records.
// Callers must hold the post row lock.
func materializeLikes(ctx context.Context, q *storage.Queries, postID string) ([]string, error) {
	usernames, err := q.FindLikeUsernamesForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := q.SetPostLikes(ctx, postID, usernames); err != nil {
		return nil, err
	}
	return usernames, nil
}
