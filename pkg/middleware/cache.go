package middleware

import "net/http"

// NoStore desliga cache para respostas que dependem do dataset vigente,
// que pode ser trocado a qualquer momento por uma reconstrução
func NoStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}
