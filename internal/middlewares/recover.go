package middlewares

import (
	"encoding/json"
	"net/http"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

// RecoverMiddleware converts a panicking handler into a JSON 500 response
// so a stack trace never reaches the client.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Errorw("panic recovered",
					"panic", rec,
					"method", r.Method,
					"uri", r.RequestURI,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
