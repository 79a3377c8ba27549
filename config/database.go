package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kenya-ni-yetu/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing: 10 base connections plus 20 overflow.
const (
	dbPoolSize     = 10
	dbMaxOverflow  = 20
	dbConnLifetime = time.Hour
)

// InitDB connects to Postgres, configures the connection pool and migrates the
// schema. It is run once at startup and is not part of the request path.
func InitDB() *gorm.DB {
	dsn := Get().DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if Get().DBEcho {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool:", err)
	}
	sqlDB.SetMaxIdleConns(dbPoolSize)
	sqlDB.SetMaxOpenConns(dbPoolSize + dbMaxOverflow)
	sqlDB.SetConnMaxLifetime(dbConnLifetime)

	// Liveness check before serving requests.
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Database ping failed:", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
