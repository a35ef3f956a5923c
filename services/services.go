package services

import "masterboxer.com/sns-api/storage"

// Services bundles the feed's services over one store.
type Services struct {
	Posts    *PostService
	Comments *CommentService
	Likes    *LikeService
}

func New(store *storage.Store) Services {
	return Services{
		Posts:    NewPostService(store),
		Comments: NewCommentService(store),
		Likes:    NewLikeService(store),
	}
}
