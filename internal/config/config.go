package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl          string
	DBMaxOpenConns int
	DBMaxIdleConns int

	ServerPort      string
	ShutdownTimeout time.Duration

	Env      string
	LogLevel string
	Timezone string

	BcryptCost         int
	CheckEmailDomain   bool
	ExposeErrorDetails bool

	RedisURL     string
	AuditChannel string

	CORSAllowedOrigins []string

	// EnvFileLoaded indica se um .env foi encontrado no diretório atual.
	EnvFileLoaded bool
}

func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		DBUrl:          getEnv("DATABASE_URL", buildPostgresURL()),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		ServerPort:      getEnv("PORT", "5000"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "America/Sao_Paulo"),

		BcryptCost:         getEnvInt("BCRYPT_COST", 10),
		CheckEmailDomain:   getEnvBool("CHECK_EMAIL_DOMAIN", false),
		ExposeErrorDetails: getEnvBool("EXPOSE_ERROR_DETAILS", true),

		RedisURL:     getEnv("REDIS_URL", ""),
		AuditChannel: getEnv("AUDIT_CHANNEL", "barber:audit"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		EnvFileLoaded: loaded,
	}
}

// buildPostgresURL monta a DSN a partir das variáveis PG* usadas pelo libpq.
func buildPostgresURL() string {
	u := url.URL{
		Scheme: "postgres",
		User: url.UserPassword(
			getEnv("PGUSER", "barber_user"),
			getEnv("PGPASSWORD", "barber_pass"),
		),
		Host: fmt.Sprintf("%s:%s", getEnv("PGHOST", "localhost"), getEnv("PGPORT", "5432")),
		Path: "/" + getEnv("PGDATABASE", "barber_db"),
	}

	q := u.Query()
	q.Set("sslmode", getEnv("PGSSLMODE", "disable"))
	u.RawQuery = q.Encode()

	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
