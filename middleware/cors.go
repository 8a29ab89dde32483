// cors.go - Cross-origin access for the browser front end

package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps h so any origin may call the API, like the public front end does.
func CORS(h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(h)
}
