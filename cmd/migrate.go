package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	// The sqlite3 driver, not database/sqlite: the latter links
	// modernc.org/sqlite, whose database/sql driver name "sqlite" collides
	// with the glebarez driver config.NewDB registers in the same binary.
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/Eboreg/klaatu-go/config"
)

var (
	migrateDir  string
	migrateDown bool
)

// databaseURL builds a migrate-compatible URL from the same env vars NewDB
// uses for gorm.
func databaseURL() string {
	if dsn := config.GetEnv("MIGRATE_DSN", ""); dsn != "" {
		return dsn
	}
	if config.GetEnv("MYSQL_DSN", "") != "" || config.GetEnv("MYSQL_HOST", "") != "" {
		user := config.GetEnv("MYSQL_USER", "root")
		pass := config.GetEnv("MYSQL_PASS", "")
		host := config.GetEnv("MYSQL_HOST", "127.0.0.1")
		port := config.GetEnv("MYSQL_PORT", "3306")
		name := config.GetEnv("MYSQL_DB", "klaatu")
		return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s", user, pass, host, port, name)
	}
	return "sqlite3://" + config.GetEnv("SQLITE_PATH", "klaatu.db")
}

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply pending schema migrations (or roll back one with --down)",
	RunE: func(c *cobra.Command, args []string) error {
		config.LoadEnv()
		m, err := migrate.New("file://"+migrateDir, databaseURL())
		if err != nil {
			return err
		}
		defer m.Close()

		if migrateDown {
			err = m.Steps(-1)
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("Nothing to migrate")
			return nil
		}
		if err != nil {
			return err
		}
		version, dirty, _ := m.Version()
		log.Printf("Migrated to version %d (dirty=%v)", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "migrations", "migrations directory")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back the latest migration")
	rootCmd.AddCommand(migrateCmd)
}
