package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	CatalogBaseURL string
	CatalogTimeout time.Duration
	CartStorage    string
	CartFile       string
	CartKey        string
	RedisAddr      string
	RedisPassword  string
	RedisURL       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	OrderDelay     time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	catalogTimeout, _ := strconv.Atoi(os.Getenv("CATALOG_TIMEOUT_SECONDS"))
	if catalogTimeout == 0 {
		catalogTimeout = 5
	}

	orderDelay, _ := strconv.Atoi(os.Getenv("ORDER_DELAY_MS"))
	if orderDelay == 0 {
		orderDelay = 3000
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "8082")),
		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		CatalogTimeout: time.Duration(catalogTimeout) * time.Second,
		CartStorage:    getEnv("CART_STORAGE", "file"),
		CartFile:       getEnv("CART_FILE", "./data/cart.json"),
		CartKey:        getEnv("CART_KEY", "storefront:cart"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "storefront"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		OrderDelay:     time.Duration(orderDelay) * time.Millisecond,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Catalog API: %s", AppConfig.CatalogBaseURL)
	log.Printf("Cart storage driver: %s", AppConfig.CartStorage)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
