package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared database handle, set by ConnectDatabase and passed into
// module constructors from main.
var DB *gorm.DB

// Settings holds the league-level runtime configuration.
type Settings struct {
	LeagueID   int
	LeagueName string
	MinYear    int
	MaxYear    int
	RedisAddr  string
}

// Load reads the league settings from the environment. Defaults match the
// league this service was built for.
func Load() Settings {
	return Settings{
		LeagueID:   getEnvInt("LEAGUE_ID", 70600),
		LeagueName: getEnv("LEAGUE_NAME", "Hoop Dreams"),
		MinYear:    getEnvInt("MIN_YEAR", 2014),
		MaxYear:    getEnvInt("MAX_YEAR", 2026),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
	}
}

// ConnectDatabase opens the Postgres connection from DB_* environment
// variables and stores it in DB.
func ConnectDatabase() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "hooprank"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db
	log.Println("Database connection established")
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
		log.Printf("Invalid integer for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
