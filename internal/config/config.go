package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config concentra todo lo configurable por entorno. Se construye una
// sola vez en main y se inyecta; no hay estado global de módulo.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	Port       string
	JWTSecret  string
}

// Load lee un .env si existe (solo en dev) y arma la configuración con
// valores por defecto pensados únicamente para desarrollo local.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "cuidatec"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		Port:       getenv("PORT", "9090"),
		JWTSecret:  getenv("JWT_SECRET", "devsecret"),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
