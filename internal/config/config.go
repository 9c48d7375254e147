package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	JWTIssuer     string
	JWTExpiration time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	FrontendURL        string

	FCMProjectID       string
	FCMCredentialsFile string

	SeedUserEmail    string
	SeedUserName     string
	SeedUserPassword string

	SeasonStart time.Time
	SeasonDays  int

	QuranAPIBaseURL  string
	PrayerAPIBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jwtExp, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "24h"))
	if err != nil {
		jwtExp = 24 * time.Hour
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	seasonStart, err := time.Parse("2006-01-02", getEnv("SEASON_START", "2026-02-18"))
	if err != nil {
		log.Fatalf("Invalid SEASON_START: %v", err)
	}
	seasonDays, _ := strconv.Atoi(getEnv("SEASON_DAYS", "30"))

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBUser:     getEnv("DB_USER", "ramadhan_user"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBName:     getEnv("DB_NAME", "ramadhan_db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		JWTIssuer:     getEnv("JWT_ISSUER", "ramadhan-tracker"),
		JWTExpiration: jwtExp,

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),

		FCMProjectID:       getEnv("FCM_PROJECT_ID", ""),
		FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),

		SeedUserEmail:    getEnv("SEED_USER_EMAIL", "galihkur@gmail.com"),
		SeedUserName:     getEnv("SEED_USER_NAME", "Galih Kur"),
		SeedUserPassword: getEnv("SEED_USER_PASSWORD", "admin1234"),

		SeasonStart: seasonStart,
		SeasonDays:  seasonDays,

		QuranAPIBaseURL:  getEnv("QURAN_API_BASE_URL", "https://api.quran.gading.dev"),
		PrayerAPIBaseURL: getEnv("PRAYER_API_BASE_URL", "https://api.aladhan.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
