package graph

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GoArmGo/ArcadeDex/internal/auth"
)

// TokenCookieName — имя cookie с сессионным токеном.
const TokenCookieName = "token"

type sessionCtxKey struct{}

// Session — носитель сессии запроса: доступ к ResponseWriter для
// установки/очистки cookie и идентификатор пользователя, если токен
// из cookie прошел проверку.
type Session struct {
	w      http.ResponseWriter
	userID *uuid.UUID
	maxAge int
}

// UserID возвращает идентификатор аутентифицированного пользователя.
func (s *Session) UserID() (uuid.UUID, bool) {
	if s == nil || s.userID == nil {
		return uuid.Nil, false
	}
	return *s.userID, true
}

// SetToken устанавливает HTTP-only cookie с сессионным токеном.
// Max-Age совпадает со временем жизни токена.
func (s *Session) SetToken(token string) {
	if s == nil || s.w == nil {
		return
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.maxAge,
	})
}

// ClearToken удаляет сессионную cookie.
func (s *Session) ClearToken() {
	if s == nil || s.w == nil {
		return
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// WithSession кладет сессию в контекст запроса.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext достает сессию из контекста; nil, если ее нет.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return s
}

// SessionMiddleware разбирает cookie с токеном и кладет сессию в контекст.
// Невалидный или отсутствующий токен — не ошибка: сессия остается
// неаутентифицированной, решение принимает резолвер.
func SessionMiddleware(issuer *auth.TokenIssuer) func(next http.Handler) http.Handler {
	maxAge := int(issuer.TTL().Seconds())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{w: w, maxAge: maxAge}

			if cookie, err := r.Cookie(TokenCookieName); err == nil {
				if userID, err := issuer.Parse(cookie.Value); err == nil {
					sess.userID = &userID
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
