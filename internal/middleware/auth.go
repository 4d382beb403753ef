package middleware

import (
	"net/http"
	"strings"

	"RepairService/internal/auth"
	"RepairService/pkg/utils"
)

type TokenParser interface {
	Parse(tokenStr string) (string, error)
}

// Auth проверяет Bearer-токен и кладёт идентификатор владельца в контекст.
// Запрос без валидного токена отклоняется до обращения к хранилищу.
func Auth(tokens TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			ownerID, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), ownerID)))
		})
	}
}
