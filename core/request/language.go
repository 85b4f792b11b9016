package request

import (
	"github.com/labstack/echo/v4"

	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/registry"
	entity "github.com/Eboreg/klaatu-go/model/entity"
)

// SessionCookie names the cookie carrying the session ID used for the
// redis-backed session lookups.
const SessionCookie = "klaatu_session"

// ResolveLanguage picks the language for a request. Priority:
//
//  1. `language` GET param (must be a configured language)
//  2. Authenticated user's language
//  3. Session value (redis), when a session cookie is present
//  4. Configured default
func ResolveLanguage(c echo.Context) string {
	cfg := config.AppConfig
	if lang := c.QueryParam("language"); lang != "" && cfg.HasLanguage(lang) {
		return lang
	}
	if u := UserFrom(c); u != nil && u.Language != nil && *u.Language != "" {
		return *u.Language
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		if lang := config.SessionGet(cookie.Value, cfg.LanguageSessionKey); lang != "" {
			return lang
		}
	}
	return cfg.DefaultLanguage
}

// LanguageMiddleware resolves the request language once and stores it for
// serializers and templates. Must run after auth (needs the request user).
func LanguageMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			registry.SetRequest(c, registry.KeyRequestLanguage, ResolveLanguage(c))
			return next(c)
		}
	}
}

// LanguageFrom returns the language resolved by LanguageMiddleware, or the
// configured default when the middleware did not run.
func LanguageFrom(c echo.Context) string {
	if v, ok := registry.GetRequest(c, registry.KeyRequestLanguage); ok {
		if lang, isStr := v.(string); isStr {
			return lang
		}
	}
	return config.AppConfig.DefaultLanguage
}

// SetUser stores the authenticated user on the request.
func SetUser(c echo.Context, u *entity.User) {
	registry.SetRequest(c, registry.KeyRequestUser, u)
}

// UserFrom returns the authenticated user, or nil.
func UserFrom(c echo.Context) *entity.User {
	if v, ok := registry.GetRequest(c, registry.KeyRequestUser); ok {
		if u, isUser := v.(*entity.User); isUser {
			return u
		}
	}
	return nil
}
