package auth

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/request"
	userRepo "github.com/Eboreg/klaatu-go/model/repository/user"
)

// Middleware returns the auth middleware based on the AUTH_TYPE env var.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	skipper := buildSkipper()
	repo := userRepo.NewUserRepository(db)
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		return keyAuth(skipper)
	case "token":
		return tokenAuth(repo, skipper)
	default:
		return basicAuth(repo, skipper)
	}
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

// basicAuth checks credentials against API_USER/API_PASS and, when the
// username matches a DB user, attaches that user to the request so
// created_by stamping and language resolution can use it.
func basicAuth(repo *userRepo.UserRepository, skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if username != os.Getenv("API_USER") || password != os.Getenv("API_PASS") {
				return false, nil
			}
			if u, err := repo.FindByUsername(username); err == nil {
				request.SetUser(c, u)
			}
			return true, nil
		},
		Skipper: skipper,
	})
}

func keyAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return key == apiKey, nil
		},
		Skipper: skipper,
	})
}

// tokenAuth validates bearer tokens against the access_token table and
// attaches the owning user to the request.
func tokenAuth(repo *userRepo.UserRepository, skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		AuthScheme: "Bearer",
		Validator: func(token string, c echo.Context) (bool, error) {
			u, err := repo.FindByActiveToken(token)
			if err != nil {
				return false, nil
			}
			if !u.IsActive {
				return false, nil
			}
			request.SetUser(c, u)
			return true, nil
		},
		Skipper: skipper,
	})
}
