package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	SecretKey       string
	TokenTTLMinutes int
	GinMode         string
	Port            string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "todo_user"),
		DBPassword:      getEnv("DB_PASSWORD", "1222"),
		DBName:          getEnv("DB_NAME", "tododb"),
		SecretKey:       getEnv("SECRET_KEY", "CHANGE_ME_SECRET_KEY"),
		TokenTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		GinMode:         getEnv("GIN_MODE", "debug"),
		Port:            getEnv("PORT", "8000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
