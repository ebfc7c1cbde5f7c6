package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/depotsync/pkg/api"
)

//go:generate moq -out verifier_mock.go . Verifier

// Verifier проверяет API ключ и возвращает роль из него
type Verifier interface {
	Verify(token string) (role string, err error)
}

type contextKey string

const roleKey contextKey = "role"

// WithRole stores the authenticated role in ctx.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFrom returns the role set by APIKey.
func RoleFrom(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// APIKey создает middleware проверки ключа Postgrest-клиента.
// Ключ берется из заголовка apikey, иначе из Authorization: Bearer.
func APIKey(logger *slog.Logger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractKey(r)
			if token == "" {
				logger.Warn("Missing api key", "path", r.URL.Path)
				WriteError(w, http.StatusUnauthorized, api.ErrorResponse{
					Code:    "unauthorized",
					Message: "missing api key",
				})
				return
			}

			role, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("Invalid api key", "error", err)
				WriteError(w, http.StatusUnauthorized, api.ErrorResponse{
					Code:    "unauthorized",
					Message: "invalid api key",
				})
				return
			}

			logger.Debug("Request authenticated", "role", role)
			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

func extractKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(api.HeaderAPIKey)); key != "" {
		return key
	}

	// Ожидаем формат: "Bearer <token>"
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
