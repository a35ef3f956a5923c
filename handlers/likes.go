package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"masterboxer.com/sns-api/models"
	"masterboxer.com/sns-api/services"
)

func GetPostLikes(svc *services.LikeService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		summary, err := svc.ListLikes(ctx, postID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			postNotFound(w, postID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusOK, summary)
		}
	}
}

// LikePost answers 201 whether or not the user had already liked the post.
func LikePost(svc *services.LikeService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		var req models.LikeRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		like, err := svc.AddLike(ctx, postID, req.Username)
		switch {
		case errors.Is(err, services.ErrNotFound):
			postNotFound(w, postID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusCreated, like)
		}
	}
}

func UnlikePost(svc *services.LikeService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		var req models.LikeRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		err := svc.RemoveLike(ctx, postID, req.Username)
		switch {
		case errors.Is(err, services.ErrNotFound):
			postNotFound(w, postID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}
