package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = "5000"
	DefaultDatabase     = "localFoodLovers"
	DefaultStoreTimeout = 10 * time.Second
	DefaultEnv          = "dev"
)

// Config regroupe les variables d'environnement du serveur
type Config struct {
	MongoURI     string
	Database     string
	Port         string
	StoreTimeout time.Duration
	Env          string
}

// Load charge le fichier .env s'il existe puis lit l'environnement
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
	return FromEnv()
}

// FromEnv construit la configuration sans toucher au fichier .env
func FromEnv() (*Config, error) {
	cfg := &Config{
		MongoURI:     os.Getenv("MONGODB_URI"),
		Database:     getEnv("MONGODB_DB", DefaultDatabase),
		Port:         getEnv("PORT", DefaultPort),
		StoreTimeout: DefaultStoreTimeout,
		Env:          getEnv("APP_ENV", DefaultEnv),
	}

	if raw := os.Getenv("STORE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("STORE_TIMEOUT invalide %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("STORE_TIMEOUT doit être positif, reçu %s", d)
		}
		cfg.StoreTimeout = d
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		return nil, fmt.Errorf("APP_ENV doit valoir dev ou prod, reçu %q", cfg.Env)
	}

	return cfg, nil
}

// Addr retourne l'adresse d'écoute du serveur HTTP
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
