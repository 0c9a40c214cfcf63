package middleware

import (
	"encoding/json"
	"net/http"
)

// RequestSizeLimit answers 400 with message when the declared body is larger than maxBytes
// and caps reads of undeclared bodies at maxBytes
func RequestSizeLimit(maxBytes int64, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": message})
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
