package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration. It is loaded once at
// startup and never mutated afterwards.
type Config struct {
	AppPort             string // Application port
	DBUser              string // Database user
	DBPassword          string // Database password
	DBHost              string // Database host
	DBPort              string // Database port
	DBName              string // Database name
	JWTSecret           string // JWT signing secret
	PaymentSecret       string // Shared secret for payment signatures
	AccessTokenTTLMin   int    // Access token lifetime in minutes
	RefreshTokenTTLDays int    // Refresh token lifetime in days
	RedisAddr           string // Redis server address
	RedisPass           string // Redis password
	RedisDB             int    // Redis database number
	IsProd              bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	accessTTL, _ := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	if accessTTL <= 0 {
		accessTTL = 30 // Default access token lifetime
	}
	refreshTTL, _ := strconv.Atoi(os.Getenv("REFRESH_TOKEN_EXPIRE_DAYS"))
	if refreshTTL <= 0 {
		refreshTTL = 7 // Default refresh token lifetime
	}
	return &Config{
		AppPort:             os.Getenv("APP_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBName:              os.Getenv("DB_NAME"),
		JWTSecret:           os.Getenv("JWT_SECRET_KEY"),
		PaymentSecret:       os.Getenv("SECRET_KEY"),
		AccessTokenTTLMin:   accessTTL,
		RefreshTokenTTLDays: refreshTTL,
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPass:           os.Getenv("REDIS_PASS"),
		RedisDB:             redisDB,
		IsProd:              os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name from the database settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
