package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	UploadDir string
	LogFile   string
	// AdminCode is the signup code that grants the admin role.
	// Empty disables admin signup entirely.
	AdminCode string
}

func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "linkjobs.db"
	} // sqlite file in project root
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "./web/uploads"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./linkjobs.log"
	}

	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		UploadDir: uploads,
		LogFile:   logFile,
		AdminCode: os.Getenv("ADMIN_SIGNUP_CODE"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s LOG_FILE=%s admin_signup_enabled=%v",
		cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.LogFile, cfg.AdminCode != "")
	return cfg
}
