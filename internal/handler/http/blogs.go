package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lamijafatic/blog-website-api/internal/utils"
	"github.com/lamijafatic/blog-website-api/models"
)

// Multipart field names of blog create and update.
const (
	titleFormField       = "title"
	descriptionFormField = "description"
	userIDFormField      = "userId"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.BlogService.List(r.Context(), page)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := h.services.BlogService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, refs{blog: id})
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) listBlogsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.BlogService.ListByUser(r.Context(), userID, page)
	if err != nil {
		writeError(w, r, err, refs{user: userID})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) searchBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	result, err := h.services.BlogService.Search(r.Context(), r.URL.Query().Get("query"), page)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// createBlog expects the title, description, userId and image multipart fields.
func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		writeError(w, r, err, refs{})
		return
	}
	image, err := formImage(r)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	req := models.BlogCreateRequest{
		Title:       r.FormValue(titleFormField),
		Description: r.FormValue(descriptionFormField),
		UserID:      r.FormValue(userIDFormField),
		Image:       image,
	}

	blog, err := h.services.BlogService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, refs{user: req.UserID})
		return
	}

	w.Header().Set("Location", "/api/blogs/"+blog.ID)
	utils.WriteJSON(w, blog, http.StatusCreated)
}

// updateBlog accepts the same multipart fields as createBlog, all optional.
// userId is ignored; blogs do not change author.
func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
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

	req := models.BlogUpdateRequest{
		Title:       formValue(r, titleFormField),
		Description: formValue(r, descriptionFormField),
		Image:       image,
	}

	if err = h.services.BlogService.Update(r.Context(), id, req); err != nil {
		writeError(w, r, err, refs{blog: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.BlogService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, refs{blog: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
