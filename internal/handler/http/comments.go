package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lamijafatic/blog-website-api/internal/utils"
	"github.com/lamijafatic/blog-website-api/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.CommentService.List(r.Context(), page)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	comment, err := h.services.CommentService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, refs{comment: id})
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) listCommentsByBlog(w http.ResponseWriter, r *http.Request) {
	blogID := chi.URLParam(r, "blogId")

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.CommentService.ListByBlog(r.Context(), blogID, page)
	if err != nil {
		writeError(w, r, err, refs{blog: blogID})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listCommentsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.CommentService.ListByUser(r.Context(), userID, page)
	if err != nil {
		writeError(w, r, err, refs{user: userID})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, refs{})
		return
	}

	comment, err := h.services.CommentService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, refs{user: req.UserID, blog: req.BlogID})
		return
	}

	w.Header().Set("Location", "/api/comments/"+comment.ID)
	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, refs{})
		return
	}

	if err := h.services.CommentService.Update(r.Context(), id, req); err != nil {
		writeError(w, r, err, refs{comment: id, user: req.UserID, blog: req.BlogID})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.CommentService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, refs{comment: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
