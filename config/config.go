package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	WebPort string
	DBUrl   string
	// Maximum concurrent database connections held by the pool
	DBMaxConns  int `validate:"gte=1"`
	JWTSecret   string
	FrontendURL string
	// Note rules
	MinNoteLength   int      `validate:"gte=1"`
	NoteWriterRoles []string `validate:"min=1,dive,required"`
	// StrictAuth switches between real token verification and the fixed
	// development identity below
	StrictAuth    bool
	MockUserID    int64
	MockUserRole  string
	MockUserEmail string
	// Redis Configuration (optional, backs rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int `validate:"gte=1"`
	RateLimitGlobalThreshold int `validate:"gte=1"`
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		WebPort:     getEnv("WEB_PORT", "8081"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		MinNoteLength:   getEnvInt("MIN_NOTE_LENGTH", 20),
		NoteWriterRoles: getEnvList("NOTE_WRITER_ROLES", []string{"Recruitment Executive", "Manager", "Admin"}),

		StrictAuth:    getEnvBool("STRICT_AUTH", true),
		MockUserID:    int64(getEnvInt("MOCK_USER_ID", 1)),
		MockUserRole:  getEnv("MOCK_USER_ROLE", "Recruitment Executive"),
		MockUserEmail: getEnv("MOCK_USER_EMAIL", "recruiter@example.com"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.StrictAuth && cfg.JWTSecret == "" {
		log.Println("WARNING: STRICT_AUTH is enabled but JWT_SECRET is empty. All tokens will be rejected.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	// Reject unusable values early (e.g. MIN_NOTE_LENGTH=0 or an empty
	// writer role list would silently disable the rules)
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList parses a comma-separated environment variable, trimming each entry
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
