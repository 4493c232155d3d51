package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"healthcard_backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	driver := strings.ToLower(getenv("DB_DRIVER", "postgres"))

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		path := getenv("SQLITE_PATH", "healthcard.db")
		log.Printf("🔌 Koneksi ke SQLite (%s)...", path)
		dialector = sqlite.Open(path + "?_busy_timeout=5000&_foreign_keys=on")
	default:
		log.Println("🔌 Koneksi ke PostgreSQL...")
		// Catatan: kalau pakai PgBouncer, biarkan PreferSimpleProtocol=true
		sslmode := getenv("DB_SSLMODE", "require")
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=healthcard&options=-c statement_timeout=3000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: configs.NewGormLogger()})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if driver == "sqlite" {
		// SQLite hanya aman dengan satu writer
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	if DB.Dialector.Name() == "sqlite" {
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
