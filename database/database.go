package database

import (
	"WhereIsIt/internal/config"
	"WhereIsIt/internal/models"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDatabase(configuration *config.Configuration) (*gorm.DB, error) {
	dialector, err := openDialector(configuration.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func openDialector(databaseConfig config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(databaseConfig.Driver) {
	case "sqlite":
		if dir := filepath.Dir(databaseConfig.Path); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(SqliteDSN(databaseConfig.Path)), nil
	case "postgres":
		dsn := databaseConfig.DSN
		if dsn == "" {
			var err error
			if dsn, err = postgresDSNFromEnv(); err != nil {
				return nil, err
			}
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", databaseConfig.Driver)
	}
}

// sqliteOptions enables foreign keys and makes every transaction take the
// write lock at BEGIN, so concurrent read-then-write transactions queue on
// the busy timeout instead of failing with "database is locked".
const sqliteOptions = "_foreign_keys=on&_txlock=immediate&_busy_timeout=5000"

func SqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteOptions
	}
	return fmt.Sprintf("file:%s?%s", path, sqliteOptions)
}

func postgresDSNFromEnv() (string, error) {
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" && envVariable != "DB_SSLMODE" && envVariable != "DB_TZ" {
			return "", errors.New(fmt.Sprintf("%s environment variable not set", envVariable))
		}
	}
	if os.Getenv("DB_SSLMODE") == "" {
		if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
			return "", err
		}
	}
	if os.Getenv("DB_TZ") == "" {
		if err := os.Setenv("DB_TZ", "UTC"); err != nil {
			return "", err
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Error closing database: %v", err)
	}
}
