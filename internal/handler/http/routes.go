package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lamijafatic/blog-website-api/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RateLimit.Enabled {
		router.Use(newClientLimiter(h.cfg.RateLimit).rateLimit)
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	member := requireCapability(models.CapabilityMember)
	admin := requireCapability(models.CapabilityAdmin)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)

			r.Group(func(r chi.Router) {
				r.Use(h.auth, member)
				r.Put("/{id}", h.replaceUser)
				r.Post("/{id}/uploadImage", h.uploadProfileImage)
				r.Delete("/{id}/deleteImage", h.deleteProfileImage)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth, admin)
				r.Get("/all", h.listAllUsers)
				r.Post("/", h.createUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.listBlogs)
			r.Get("/search", h.searchBlogs)
			r.Get("/user/{userId}", h.listBlogsByUser)
			r.Get("/{id}", h.getBlog)

			r.Group(func(r chi.Router) {
				r.Use(h.auth, member)
				r.Post("/", h.createBlog)
				r.Put("/{id}", h.updateBlog)
				r.Delete("/{id}", h.deleteBlog)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(h.auth, member)
			r.Get("/", h.listComments)
			r.Get("/blog/{blogId}", h.listCommentsByBlog)
			r.Get("/user/{userId}", h.listCommentsByUser)
			r.Get("/{id}", h.getComment)
			r.Post("/", h.createComment)
			r.Put("/{id}", h.updateComment)
			r.Delete("/{id}", h.deleteComment)
		})
	})

	router.NotFound(http.NotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
