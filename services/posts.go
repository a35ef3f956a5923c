package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/models"
	"masterboxer.com/sns-api/storage"
)

type PostService struct {
	store *storage.Store
	now   func() time.Time
}

func NewPostService(store *storage.Store) *PostService {
	return &PostService{store: store, now: now}
}

// now is truncated to the storage precision so returned values equal stored ones.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ListPosts returns every post, newest first. Comment counts cost one query per post.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		count, err := s.store.CountCommentsForPost(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].CommentsCount = count
	}
	return posts, nil
}

func (s *PostService) CreatePost(ctx context.Context, username, content string) (models.Post, error) {
	ts := s.now()
	post := models.Post{
		ID:        uuid.NewString(),
		Username:  username,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
		LikedBy:   []string{},
	}

	if err := s.store.InsertPost(ctx, post); err != nil {
		return models.Post{}, err
	}

	log.WithFields(log.Fields{"post_id": post.ID, "username": username}).Debug("Post created")
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (models.Post, error) {
	post, err := s.store.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, postLookupErr(err)
	}

	post.CommentsCount, err = s.store.CountCommentsForPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// UpdatePost replaces the content of a post written by username. Likes and
// createdAt are never touched.
func (s *PostService) UpdatePost(ctx context.Context, id, username, content string) (models.Post, error) {
	var updated models.Post
	err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
		post, err := q.LockPostByID(ctx, id)
		if err != nil {
			return postLookupErr(err)
		}
		if !models.AuthorMatches(post, username) {
			return ErrNotOwner
		}

		post.Content = content
		post.UpdatedAt = s.now()
		if err := q.UpdatePostContent(ctx, id, post.Content, post.UpdatedAt); err != nil {
			return err
		}

		post.CommentsCount, err = q.CountCommentsForPost(ctx, id)
		if err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

// DeletePost removes the post, then its comments, then its likes, all in one
// transaction so no partial cascade is ever visible.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	var comments, likes int64
	err := s.store.ExecTx(ctx, func(q *storage.Queries) error {
		if _, err := q.LockPostByID(ctx, id); err != nil {
			return postLookupErr(err)
		}
		if err := q.DeletePost(ctx, id); err != nil {
			return fmt.Errorf("cascade post %s: %w", id, err)
		}

		var err error
		if comments, err = q.DeleteCommentsForPost(ctx, id); err != nil {
			return fmt.Errorf("cascade comments of %s: %w", id, err)
		}
		if likes, err = q.DeleteLikesForPost(ctx, id); err != nil {
			return fmt.Errorf("cascade likes of %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"post_id":  id,
		"comments": comments,
		"likes":    likes,
	}).Info("Post deleted")
	return nil
}
