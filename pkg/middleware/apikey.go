package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	ContextKeyAPIKey contextKey = "api_key"
)

// APIKey extrai a chave do Rule.io do header Authorization: Bearer.
// Não rejeita a requisição; a ausência da chave é tratada no despacho.
func APIKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			apiKey := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if authHeader == "" || apiKey == authHeader {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAPIKey, apiKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyFromContext devolve a chave extraída por APIKey ou string vazia
func APIKeyFromContext(ctx context.Context) string {
	apiKey, _ := ctx.Value(ContextKeyAPIKey).(string)
	return apiKey
}
