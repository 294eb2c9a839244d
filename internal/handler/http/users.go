package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lamijafatic/blog-website-api/internal/utils"
	"github.com/lamijafatic/blog-website-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.UserService.List(r.Context(), page)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, refs{user: id})
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, refs{})
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	w.Header().Set("Location", "/api/users/"+user.ID)
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, refs{})
		return
	}

	if err := h.services.UserService.Replace(r.Context(), id, req); err != nil {
		writeError(w, r, err, refs{user: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, refs{user: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadProfileImage expects a multipart body with an "image" file field.
func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.parseMultipart(w, r); err != nil {
		writeError(w, r, err, refs{})
		return
	}
	image, err := formImage(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	resp, err := h.services.UserService.UploadProfileImage(r.Context(), id, image)
	if err != nil {
		writeError(w, r, err, refs{user: id})
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteProfileImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteProfileImage(r.Context(), id); err != nil {
		writeError(w, r, err, refs{user: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
