package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"masterboxer.com/sns-api/database"
	"masterboxer.com/sns-api/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Open(database.SQLite, ":memory:", 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.ResetSchema(context.Background(), db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return NewStore(db, database.SQLite)
}

var baseTime = time.Date(2024, 1, 28, 10, 30, 0, 0, time.UTC)

func seedPost(t *testing.T, s *Store, id, username string, createdAt time.Time) models.Post {
	t.Helper()
	p := models.Post{
		ID:        id,
		Username:  username,
		Content:   "content of " + id,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := s.InsertPost(context.Background(), p); err != nil {
		t.Fatalf("insert post %s: %v", id, err)
	}
	return p
}

func TestPostRoundTripAndNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)

	got, err := s.FindPostByID(ctx, "p1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Username != "alice" || !got.CreatedAt.Equal(baseTime) {
		t.Fatalf("unexpected post: %+v", got)
	}
	if got.LikesCount != 0 || len(got.LikedBy) != 0 || got.LikedBy == nil {
		t.Fatalf("new post should have an empty, non-nil like list: %+v", got)
	}

	if _, err := s.FindPostByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing post: want ErrNotFound got=%v", err)
	}
	if err := s.UpdatePostContent(ctx, "missing", "x", baseTime); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: want ErrNotFound got=%v", err)
	}
	if err := s.DeletePost(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: want ErrNotFound got=%v", err)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	seedPost(t, s, "old", "alice", baseTime)
	seedPost(t, s, "new", "bob", baseTime.Add(time.Hour))
	seedPost(t, s, "mid", "carol", baseTime.Add(time.Minute))

	posts, err := s.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var ids []string
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	if want := []string{"new", "mid", "old"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("order: want=%v got=%v", want, ids)
	}
}

func TestCommentScopedToPost(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)
	seedPost(t, s, "p2", "alice", baseTime)

	c := models.Comment{ID: "c1", PostID: "p1", Username: "bob", Content: "hi", CreatedAt: baseTime, UpdatedAt: baseTime}
	if err := s.InsertComment(ctx, c); err != nil {
		t.Fatalf("insert comment: %v", err)
	}

	if _, err := s.FindCommentByPostAndID(ctx, "p1", "c1"); err != nil {
		t.Fatalf("find on owning post: %v", err)
	}
	if _, err := s.FindCommentByPostAndID(ctx, "p2", "c1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("find on other post: want ErrNotFound got=%v", err)
	}

	count, err := s.CountCommentsForPost(ctx, "p1")
	if err != nil || count != 1 {
		t.Fatalf("count: want=1 got=%d err=%v", count, err)
	}
}

func TestFindCommentsByPostOrdersByCreation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)

	for i, id := range []string{"late", "early"} {
		at := baseTime.Add(time.Duration(1-i) * time.Minute)
		c := models.Comment{ID: id, PostID: "p1", Username: "bob", Content: id, CreatedAt: at, UpdatedAt: at}
		if err := s.InsertComment(ctx, c); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	comments, err := s.FindCommentsByPost(ctx, "p1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(comments) != 2 || comments[0].ID != "early" || comments[1].ID != "late" {
		t.Fatalf("unexpected order: %+v", comments)
	}
}

func TestInsertLikeIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)

	like := models.Like{PostID: "p1", Username: "carol", LikedAt: baseTime}
	inserted, err := s.InsertLike(ctx, like)
	if err != nil || !inserted {
		t.Fatalf("first insert: inserted=%t err=%v", inserted, err)
	}
	inserted, err = s.InsertLike(ctx, like)
	if err != nil || inserted {
		t.Fatalf("second insert: inserted=%t err=%v", inserted, err)
	}

	deleted, err := s.DeleteLike(ctx, "p1", "carol")
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%t err=%v", deleted, err)
	}
	deleted, err = s.DeleteLike(ctx, "p1", "carol")
	if err != nil || deleted {
		t.Fatalf("second delete: deleted=%t err=%v", deleted, err)
	}
}

func TestSetPostLikesWritesCountAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)

	if err := s.SetPostLikes(ctx, "p1", []string{"carol", "dave"}); err != nil {
		t.Fatalf("set likes: %v", err)
	}

	got, err := s.FindPostByID(ctx, "p1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.LikesCount != 2 || !reflect.DeepEqual(got.LikedBy, []string{"carol", "dave"}) {
		t.Fatalf("unexpected likes: count=%d likedBy=%v", got.LikesCount, got.LikedBy)
	}
}

func TestExecTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)

	boom := errors.New("boom")
	err := s.ExecTx(ctx, func(q *Queries) error {
		if err := q.DeletePost(ctx, "p1"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom got=%v", err)
	}

	if _, err := s.FindPostByID(ctx, "p1"); err != nil {
		t.Fatalf("post should survive rollback: %v", err)
	}
}

func TestLikeUsernamesKeepInsertionOrderOnTimestampTies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPost(t, s, "p1", "alice", baseTime)

	for _, u := range []string{"zed", "amy", "mia"} {
		if _, err := s.InsertLike(ctx, models.Like{PostID: "p1", Username: u, LikedAt: baseTime}); err != nil {
			t.Fatalf("insert %s: %v", u, err)
		}
	}
	if _, err := s.DeleteLike(ctx, "p1", "mia"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.InsertLike(ctx, models.Like{PostID: "p1", Username: "bea", LikedAt: baseTime}); err != nil {
		t.Fatalf("insert bea: %v", err)
	}

	got, err := s.FindLikeUsernamesForPost(ctx, "p1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if want := []string{"zed", "amy", "bea"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: want=%v got=%v", want, got)
	}
}
