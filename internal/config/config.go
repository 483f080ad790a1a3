package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	BackendURL string // empty runs the POS against the seeded local cache only
	LogFile    string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "uniformes.db" // sqlite file in project root
	}
	backend := os.Getenv("BACKEND_URL")
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./uniformes.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, BackendURL: backend, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s BACKEND_URL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.BackendURL, cfg.LogFile)
	return cfg
}
