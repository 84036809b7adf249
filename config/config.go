package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reúne as configurações lidas do ambiente.
type Config struct {
	DBDSN      string
	ServerPort string
	CORSOrigin string
}

// Load carrega o .env (se existir) e monta a configuração a partir das
// variáveis de ambiente. DB_DSN é obrigatória.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:      os.Getenv("DB_DSN"),
		ServerPort: os.Getenv("SERVER_PORT"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN não está definido")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}

	return cfg
}
