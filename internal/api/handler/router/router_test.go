package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(key, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(key, value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/v1/ping",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{header("X-Order", "a"), header("X-Order", "b")},
	}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "rota registrada", method: http.MethodGet, path: "/v1/ping", wantStatus: http.StatusNoContent},
		{name: "rota inexistente", method: http.MethodGet, path: "/v1/nope", wantStatus: http.StatusNotFound, wantBody: "VAL_004"},
		{name: "método errado", method: http.MethodPost, path: "/v1/ping", wantStatus: http.StatusMethodNotAllowed, wantBody: "VAL_005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody))
			}
			if tt.wantStatus == http.StatusNoContent {
				// Middlewares da rota rodam na ordem da lista
				assert.Equal(t, []string{"a", "b"}, rec.Header().Values("X-Order"))
			}
		})
	}
}
