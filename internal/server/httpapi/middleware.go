package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// requestLogger tags each request with an id (taken from the client when it
// sends one) and logs it once the response is written.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, requestID)

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// requireSession rejects requests without a valid session token and stores
// the token's user id in the request context.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.SessionTokenHeaderName)
		if token == "" {
			h.errorResponse(w, r, http.StatusUnauthorized, "missing session token")
			return
		}

		userID, err := h.users.UserIDFromToken(token)
		if err != nil {
			msg := "invalid session token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "session expired, please log in again"
			}
			h.errorResponse(w, r, http.StatusUnauthorized, msg)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDContextKey).(string)
	return id
}
