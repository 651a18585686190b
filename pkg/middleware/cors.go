package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the booking frontends to call the API from the browser.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
