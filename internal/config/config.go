package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSummarizerURL = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

type Config struct {
	DatabaseURL string
	DBDriver    string
	MongoURI    string
	MongoDB     string
	Port        string

	SummarizerURL     string
	SummarizerToken   string
	SummarizerTimeout time.Duration
	SummaryCacheTTL   time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		DatabaseURL:       NormalizeDatabaseURL(getEnv("DATABASE_URL", "")),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		MongoURI:          getEnv("MONGO_URI", ""),
		MongoDB:           getEnv("MONGO_DB", "productCatalog"),
		Port:              getEnv("PORT", "8000"),
		SummarizerURL:     getEnv("SUMMARIZER_URL", defaultSummarizerURL),
		SummarizerToken:   getEnv("SUMMARIZER_TOKEN", ""),
		SummarizerTimeout: getDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
		SummaryCacheTTL:   getDuration("SUMMARY_CACHE_TTL", 0),
	}
}

// NormalizeDatabaseURL acepta URLs estilo SQLAlchemy (postgresql+psycopg2://)
// y las convierte al esquema que entiende el driver de Go.
func NormalizeDatabaseURL(raw string) string {
	for _, prefix := range []string{"postgresql+psycopg2://", "postgresql+psycopg://", "postgresql://"} {
		if strings.HasPrefix(raw, prefix) {
			return "postgres://" + strings.TrimPrefix(raw, prefix)
		}
	}
	return raw
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️ Invalid duration for %s (%q), using %s", key, value, fallback)
		return fallback
	}
	return d
}
