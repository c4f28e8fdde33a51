package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/luizvb/gendaia-sub001/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя
	// Проставляется API gateway после проверки токена
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "требуется аутентификация"
	msgInvalidUserID = "некорректный идентификатор пользователя"
)

// Auth middleware извлекает ID пользователя из заголовка и кладет его в контекст
// Запросы без валидного заголовка отклоняются с 401
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(HeaderUserID)
			if userIDStr == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, HeaderUserID, userIDStr)
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidUserID)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
