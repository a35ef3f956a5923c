package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"masterboxer.com/sns-api/models"
	"masterboxer.com/sns-api/services"
)

func postNotFound(w http.ResponseWriter, postID string) {
	writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf("Post with ID '%s' not found", postID))
}

func GetPosts(svc *services.PostService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		posts, err := svc.ListPosts(ctx)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

func CreatePost(svc *services.PostService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.NewPostRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		post, err := svc.CreatePost(ctx, req.Username, req.Content)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, post)
	}
}

func GetPost(svc *services.PostService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		post, err := svc.GetPost(ctx, postID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			postNotFound(w, postID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusOK, post)
		}
	}
}

func UpdatePost(svc *services.PostService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		var req models.UpdatePostRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		post, err := svc.UpdatePost(ctx, postID, req.Username, req.Content)
		switch {
		case errors.Is(err, services.ErrNotFound):
			// Absent and not-yours look the same to the caller.
			writeError(w, http.StatusNotFound, codeNotFound, "Post not found or you do not have permission to update it")
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusOK, post)
		}
	}
}

func DeletePost(svc *services.PostService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		err := svc.DeletePost(ctx, postID)
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
