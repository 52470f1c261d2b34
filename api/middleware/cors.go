package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/feedbacklink-io/feedbacklink-backend/pkg/config"
)

// CORS returns middleware that applies the API's allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-FL-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-FL-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
