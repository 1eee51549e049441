package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"labstock-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		webpush: webpushOptions,
	}
}

// errorStatus maps store errors to HTTP status codes: validation 400,
// missing rows 404, state-precondition conflicts 409, everything else 500.
func errorStatus(err error) int {
	switch {
	case store.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrAssetNotFound),
		errors.Is(err, store.ErrTypeNotFound),
		errors.Is(err, store.ErrNoOpenLoan):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAssetUnavailable),
		errors.Is(err, store.ErrAssetNotOnLoan),
		errors.Is(err, store.ErrSerialExists),
		errors.Is(err, store.ErrTypeNameExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a structured error response. Infrastructure failures
// are logged and reported generically; domain errors carry their own message.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
