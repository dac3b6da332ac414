package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type verifier map[string]string

func (v verifier) Verify(token string) (string, error) {
	id, ok := v[token]
	if !ok {
		return "", errors.New("invalid player token")
	}
	return id, nil
}

func TestAuth(t *testing.T) {
	var got string
	h := Auth(verifier{"good": "p1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PlayerIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		query  string
		status int
		player string
	}{
		{name: "bearer header", header: "Bearer good", status: http.StatusNoContent, player: "p1"},
		{name: "query token", query: "?token=good", status: http.StatusNoContent, player: "p1"},
		{name: "missing", status: http.StatusUnauthorized},
		{name: "invalid", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = ""
			r := httptest.NewRequest(http.MethodGet, "/wallet"+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.player, got)
		})
	}
}
