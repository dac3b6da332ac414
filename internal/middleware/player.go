package middleware

import (
	"context"
	"net/http"
	"strings"

	"pixel_casino/pkg/resp"
)

type ctxKey struct{}

// TokenVerifier Проверка токена игрока. Подходит service.PlayerService
type TokenVerifier interface {
	Verify(accessToken string) (playerID string, err error)
}

// Auth Требует заголовок Authorization: Bearer <token> и кладет id игрока в контекст.
// Браузерный websocket не умеет ставить заголовки, поэтому токен также читается из ?token=
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearer(r)
			if tokenStr == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			playerID, err := verifier.Verify(tokenStr)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPlayerID(r.Context(), playerID)))
		})
	}
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return r.URL.Query().Get("token")
}

func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, playerID)
}

func PlayerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
