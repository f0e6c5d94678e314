package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"planets/internal/planets/model"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string        `validate:"required,startswith=mongodb"`
	DBName            string        `validate:"required"`
	PlanetsCollection string        `validate:"required"`
	Port              string        `validate:"required,numeric"`
	Environment       *string       `validate:"-"`
	StaticDir         string        `validate:"required"`
	IndexFile         string        `validate:"required"`
	APIDocsFile       string        `validate:"required"`
	SeedOnStart       bool          `validate:"-"`
	ConnectTimeout    time.Duration `validate:"gt=0"`
	ReadTimeout       time.Duration `validate:"gt=0"`
	WriteTimeout      time.Duration `validate:"gt=0"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
	LogLevel          string        `validate:"oneof=debug info warn error"`
	LogFormat         string        `validate:"oneof=json text"`
	RateLimitEnabled  bool          `validate:"-"`
	RateLimitRPS      float64       `validate:"gte=0"`
	RateLimitBurst    int           `validate:"gte=0"`
	CORSAllowOrigins  []string      `validate:"min=1,dive,required"`

	// EnvFileLoaded reports whether a .env file was found and applied.
	EnvFileLoaded bool `validate:"-"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	loaded, err := loadEnvFiles(envFiles...)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		MongoURI:          getEnv("MONGO_URI", ""),
		DBName:            getEnv("DB_NAME", "superData"),
		PlanetsCollection: getEnv("PLANETS_COLLECTION", "planets"),
		Port:              getEnv("PORT", "3000"),
		Environment:       lookupEnv("APP_ENV"),
		StaticDir:         getEnv("STATIC_DIR", "public"),
		IndexFile:         getEnv("INDEX_FILE", "public/index.html"),
		APIDocsFile:       getEnv("API_DOCS_FILE", "oas.json"),
		SeedOnStart:       getEnvBool("SEED_ON_START", true),
		ConnectTimeout:    getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		ReadTimeout:       getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:      getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "json")),
		RateLimitEnabled:  getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 40),
		CORSAllowOrigins:  splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		EnvFileLoaded:     loaded,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	err := model.GetValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		e := verrs[0]
		if e.Field() == "MongoURI" && e.Tag() == "required" {
			return fmt.Errorf("MONGO_URI is required")
		}
		return fmt.Errorf("invalid configuration: field %s failed on the '%s' tag", e.Field(), e.Tag())
	}
	return fmt.Errorf("invalid configuration: %w", err)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadEnvFiles(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return false, fmt.Errorf("stat %s: %w", f, err)
		}
		present = append(present, f)
	}
	if len(present) == 0 {
		return false, nil
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(present...); err != nil {
		return false, fmt.Errorf("load env file: %w", err)
	}
	return true, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func lookupEnv(key string) *string {
	if value, exists := os.LookupEnv(key); exists {
		return &value
	}
	return nil
}

func getEnvBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvFloat(key string, fallback float64) float64 {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Also accept duration strings such as "10s".
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
