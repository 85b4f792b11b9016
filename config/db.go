package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the configured database. MySQL when MYSQL_* vars are set,
// otherwise a local sqlite file (SQLITE_PATH, default klaatu.db) so the
// toolkit runs out of the box in development.
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" && os.Getenv("MYSQL_HOST") != "" {
		user := os.Getenv("MYSQL_USER")
		pass := os.Getenv("MYSQL_PASS")
		host := os.Getenv("MYSQL_HOST")
		port := GetEnv("MYSQL_PORT", "3306")
		db := os.Getenv("MYSQL_DB")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
	}

	if dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	}
	return gorm.Open(sqlite.Open(GetEnv("SQLITE_PATH", "klaatu.db")), &gorm.Config{Logger: gormLogger})
}
