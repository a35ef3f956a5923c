package routes

import (
	"time"

	"github.com/gorilla/mux"

	"masterboxer.com/sns-api/handlers"
	"masterboxer.com/sns-api/services"
)

func CreatePostRoutes(svc services.Services, timeout time.Duration, router *mux.Router) *mux.Router {
	router.HandleFunc("/api/posts", handlers.GetPosts(svc.Posts, timeout)).Methods("GET")
	router.HandleFunc("/api/posts", handlers.CreatePost(svc.Posts, timeout)).Methods("POST")
	router.HandleFunc("/api/posts/{id}", handlers.GetPost(svc.Posts, timeout)).Methods("GET")
	router.HandleFunc("/api/posts/{id}", handlers.UpdatePost(svc.Posts, timeout)).Methods("PATCH")
	router.HandleFunc("/api/posts/{id}", handlers.DeletePost(svc.Posts, timeout)).Methods("DELETE")

	router.HandleFunc("/api/posts/{id}/comments", handlers.GetPostComments(svc.Comments, timeout)).Methods("GET")
	router.HandleFunc("/api/posts/{id}/comments", handlers.CreateComment(svc.Comments, timeout)).Methods("POST")
	router.HandleFunc("/api/posts/{id}/comments/{commentId}", handlers.GetComment(svc.Comments, timeout)).Methods("GET")
	router.HandleFunc("/api/posts/{id}/comments/{commentId}", handlers.UpdateComment(svc.Comments, timeout)).Methods("PATCH")
	router.HandleFunc("/api/posts/{id}/comments/{commentId}", handlers.DeleteComment(svc.Comments, timeout)).Methods("DELETE")

	router.HandleFunc("/api/posts/{id}/likes", handlers.GetPostLikes(svc.Likes, timeout)).Methods("GET")
	router.HandleFunc("/api/posts/{id}/likes", handlers.LikePost(svc.Likes, timeout)).Methods("POST")
	router.HandleFunc("/api/posts/{id}/likes", handlers.UnlikePost(svc.Likes, timeout)).Methods("DELETE")

	return router
}
