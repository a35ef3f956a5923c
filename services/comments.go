package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/models"
	"masterboxer.com/sns-api/storage"
)

type CommentService struct {
	store *storage.Store
	now   func() time.Time
}

func NewCommentService(store *storage.Store) *CommentService {
	return &CommentService{store: store, now: now}
}

// CreateComment holds the parent post's row lock while inserting, so a
// concurrent DeletePost cannot leave the comment orphaned.
func (s *CommentService) CreateComment(ctx context.Context, postID, username, content string) (models.Comment, error) {
	ts := s.now()
	comment := models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
		if _, err := q.LockPostByID(ctx, postID); err != nil {
			return postLookupErr(err)
		}
		return q.InsertComment(ctx, comment)
	})
	if err != nil {
		return models.Comment{}, err
	}

	log.WithFields(log.Fields{"post_id": postID, "comment_id": comment.ID}).Debug("Comment created")
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.store.FindPostByID(ctx, postID); err != nil {
		return nil, postLookupErr(err)
	}
	return s.store.FindCommentsByPost(ctx, postID)
}

func (s *CommentService) GetComment(ctx context.Context, postID, commentID string) (models.Comment, error) {
	comment, err := s.store.FindCommentByPostAndID(ctx, postID, commentID)
	if err != nil {
		return models.Comment{}, commentLookupErr(err)
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID, username, content string) (models.Comment, error) {
	var updated models.Comment
	err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
		comment, err := q.FindCommentByPostAndID(ctx, postID, commentID)
		if err != nil {
			return commentLookupErr(err)
		}
		if !models.AuthorMatches(comment, username) {
			return ErrNotOwner
		}

		comment.Content = content
		comment.UpdatedAt = s.now()
		if err := q.UpdateCommentContent(ctx, commentID, comment.Content, comment.UpdatedAt); err != nil {
			return err
		}
		updated = comment
		return nil
	})
	if err != nil {
		return models.Comment{}, err
	}
	return updated, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID string) error {
	return s.store.ExecTx(ctx, func(q *storage.Queries) error {
		if _, err := q.FindCommentByPostAndID(ctx, postID, commentID); err != nil {
			return commentLookupErr(err)
		}
		return commentLookupErr(q.DeleteComment(ctx, commentID))
	})
}
