package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/clearhire/screening/internal/scoring"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	AuthSecret    string
	AdminUser     string
	AdminPassHash string // bcrypt

	CORSOrigins []string

	// Scoring seeds the settings row on first start; afterwards the stored
	// row wins.
	Scoring scoring.Settings

	LogLevel string // debug|info|warn|error
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:  addr,
		PublicURL: os.Getenv("PUBLIC_URL"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		AuthSecret:    envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPassHash: envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		Scoring: scoring.Settings{
			AutoAnalysisWeight: envInt("SCORING_AUTO_WEIGHT", 80),
			IABackWeight:       envInt("SCORING_IA_BACK_WEIGHT", 20),
			IAFrontWeight:      envInt("SCORING_IA_FRONT_WEIGHT", 10),
			MaxIABackPenalty:   envInt("SCORING_MAX_IA_BACK_PENALTY", 25),
			MaxIAFrontPenalty:  envInt("SCORING_MAX_IA_FRONT_PENALTY", 5),
		},

		LogLevel: envOr("LOG_LEVEL", "info"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
