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

func commentNotFound(w http.ResponseWriter, postID, commentID string) {
	writeError(w, http.StatusNotFound, codeNotFound,
		fmt.Sprintf("Comment with ID '%s' not found on post '%s'", commentID, postID))
}

func GetPostComments(svc *services.CommentService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		comments, err := svc.ListComments(ctx, postID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			postNotFound(w, postID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusOK, comments)
		}
	}
}

func CreateComment(svc *services.CommentService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["id"]

		var req models.NewCommentRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		comment, err := svc.CreateComment(ctx, postID, req.Username, req.Content)
		switch {
		case errors.Is(err, services.ErrNotFound):
			postNotFound(w, postID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusCreated, comment)
		}
	}
}

func GetComment(svc *services.CommentService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		postID, commentID := vars["id"], vars["commentId"]

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		comment, err := svc.GetComment(ctx, postID, commentID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			commentNotFound(w, postID, commentID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusOK, comment)
		}
	}
}

func UpdateComment(svc *services.CommentService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		postID, commentID := vars["id"], vars["commentId"]

		var req models.UpdateCommentRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		comment, err := svc.UpdateComment(ctx, postID, commentID, req.Username, req.Content)
		switch {
		case errors.Is(err, services.ErrNotOwner):
			writeError(w, http.StatusNotFound, codeNotFound, "Comment not found or you do not have permission to update it")
		case errors.Is(err, services.ErrNotFound):
			commentNotFound(w, postID, commentID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			writeJSON(w, http.StatusOK, comment)
		}
	}
}

func DeleteComment(svc *services.CommentService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		postID, commentID := vars["id"], vars["commentId"]

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		err := svc.DeleteComment(ctx, postID, commentID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			commentNotFound(w, postID, commentID)
		case err != nil:
			writeInternalError(w, r, err)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}
