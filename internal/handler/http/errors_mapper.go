package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lamijafatic/blog-website-api/internal/app"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/service"
	"github.com/lamijafatic/blog-website-api/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidMultipartForm: http.StatusBadRequest,
	ErrInvalidPaging:        http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmailAlreadyExists:      http.StatusConflict,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrImageUploadFailed:       http.StatusBadRequest,
	service.ErrImageDeleteFailed:       http.StatusBadRequest,
	service.ErrNoImageToDelete:         http.StatusBadRequest,
	service.ErrNoBlogsForUser:          http.StatusNotFound,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrBlogNotFound:    http.StatusNotFound,
	store.ErrCommentNotFound: http.StatusNotFound,

	store.ErrConnecting:       http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrDecodingDocument: http.StatusInternalServerError,
}

// errorMessages holds the response body of errors whose own text is not
// meant for clients.
var errorMessages = map[error]string{
	service.ErrEmailAlreadyExists: app.MsgUserAlreadyExists,
	service.ErrInvalidCredentials: app.MsgInvalidCredentials,
	service.ErrImageUploadFailed:  app.MsgImageUploadFailed,
	service.ErrImageDeleteFailed:  app.MsgImageDeletionFailed,
	service.ErrNoImageToDelete:    app.MsgNoImageToDelete,
	service.ErrNoBlogsForUser:     app.MsgNoBlogsForUser,
	service.ErrTokenIsExpired:     app.MsgTokenIsExpired,
	service.ErrForbidden:          http.StatusText(http.StatusForbidden),
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// refs names the ids a request refers to. Not-found responses mention the
// id of the missing entity when it is known.
type refs struct {
	user    string
	blog    string
	comment string
}

func errorMessage(err error, ids refs) string {
	notFound := []struct {
		target error
		entity string
		id     string
	}{
		{store.ErrUserNotFound, "User", ids.user},
		{store.ErrBlogNotFound, "Blog", ids.blog},
		{store.ErrCommentNotFound, "Comment", ids.comment},
	}
	for _, nf := range notFound {
		if errors.Is(err, nf.target) {
			if nf.id == "" {
				return http.StatusText(http.StatusNotFound)
			}
			return fmt.Sprintf(app.MsgEntityNotFoundFormat, nf.entity, nf.id)
		}
	}

	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// writeError answers with the status mapped from err. Unexpected errors
// are logged and answered with the generic 500 text.
func writeError(w http.ResponseWriter, r *http.Request, err error, ids refs) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, errorMessage(err, ids), status)
}
