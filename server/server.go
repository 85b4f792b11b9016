// Package server assembles the HTTP server: middleware stack, template
// renderer, error handler and all registered route modules. It is shared by
// the default entrypoint and the serve CLI command.
package server

import (
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/api"
	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/auth"
	"github.com/Eboreg/klaatu-go/core/cache"
	"github.com/Eboreg/klaatu-go/core/request"
	"github.com/Eboreg/klaatu-go/html"
	entity "github.com/Eboreg/klaatu-go/model/entity"
)

// New connects to the database, builds the Echo instance and applies all
// registered API modules and routes.
func New() (*echo.Echo, *gorm.DB, error) {
	db, err := config.NewDB()
	if err != nil {
		return nil, nil, err
	}
	sqldb, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if err := sqldb.Ping(); err != nil {
		return nil, nil, err
	}
	log.Println("Database connection successful.")

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.AccessToken{},
		&entity.Page{},
		&entity.MediaFile{},
	); err != nil {
		return nil, nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(requestDuration)

	e.Renderer = html.NewTemplate()
	e.HTTPErrorHandler = api.HTTPErrorHandler

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware(db))
	apiGroup.Use(request.LanguageMiddleware())
	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	e.Static("/media", config.AppConfig.MediaRoot)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return e, db, nil
}

func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		log.Printf("%s %s from %s took %d ms", c.Request().Method, c.Request().RequestURI, request.ClientIP(c.Request()), duration)
		return err
	}
}

// Run boots config, Redis and the server, then blocks serving requests.
func Run() {
	config.LoadEnv()
	config.LoadAppConfig()

	config.InitRedis()
	redisStatus := "Redis not configured, sessions and remote caching disabled."
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil
			redisStatus = "Redis configured but not reachable, sessions and remote caching disabled."
		}
	}
	log.Println(redisStatus)

	if file := config.GetEnv("CACHE_DUMP_FILE", ""); file != "" {
		if err := cache.GetInstance().RestoreFromFile(file); err == nil {
			log.Println("Restored cache from", file)
		}
	}

	e, _, err := New()
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}

	port := config.AppConfig.Port
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
