package router

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wanderjot/journal-backend/internal/domain"
)

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := domain.ContextWithRequestID(r.Context(), requestID)
		logger := domain.LoggerFromContext(ctx).With("request_id", requestID)
		ctx = domain.ContextWithLogger(ctx, logger)

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
