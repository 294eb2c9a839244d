package http

import (
	"net/http"

	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/utils"
	"github.com/lamijafatic/blog-website-api/models"
)

// register creates a USER account. Success is 201 with an empty body.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, refs{})
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	log.Info().Str("id", user.ID).Msg("user registered")
	w.WriteHeader(http.StatusCreated)
}

// login answers with {"token": "..."}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, refs{})
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, refs{})
		return
	}

	log.Debug().Str("id", token.UserID()).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
