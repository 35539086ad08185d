package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config regroupe tout ce que le storefront lit depuis l'environnement.
// Aucune autre lecture de os.Getenv ne doit exister ailleurs.
type Config struct {
	Port           string
	BackendURL     string
	SessionSecret  string
	RedisHost      string
	RedisPassword  string
	FrontendOrigin string
	RequestTimeout time.Duration
}

func Load() Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8000"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT", 10)) * time.Second,
	}

	if cfg.SessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️  %s invalide (%q), valeur par défaut %d utilisée", key, v, fallback)
		return fallback
	}
	return n
}
