package database

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	MAX_TRY_TIMES = 3
)

var ErrNotExist = errors.New("record does not exist")

// GetDSNFromEnv returns DATABASE_URL when set, and otherwise builds a DSN from POSTGRE_* variables.
func GetDSNFromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		getEnv("POSTGRE_HOST", "localhost"),
		getEnv("POSTGRE_PORT", "5432"),
		getEnv("POSTGRE_TABLE", "postgres"),
		getEnv("POSTGRE_USER", "postgres"),
		getEnv("POSTGRE_PASS", "passwd"),
		getEnv("POSTGRE_SSLMODE", "disable"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func Connect(dsn string, enableLogger bool) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < MAX_TRY_TIMES; i++ {
		newLogger := logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)
		config := gorm.Config{
			Logger: newLogger,
		}
		if enableLogger {
			config.Logger = config.Logger.LogMode(logger.Info)
		}
		db, err := gorm.Open(postgres.Open(dsn), &config)
		if err != nil {
			lastErr = err
			slog.Warn("Cannot connect db", "try", i+1, "max", MAX_TRY_TIMES, "err", err)
			time.Sleep(5 * time.Second)
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db.DB() failed: %w", err)
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return db, nil
	}
	return nil, fmt.Errorf("cannot connect db %d times: %w", MAX_TRY_TIMES, lastErr)
}

// AutoMigrate creates the lookup, problem and test case tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ProblemDifficulty{},
		&Tag{},
		&Problem{},
		&ProblemTag{},
		&TestCase{},
	)
}
