package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host    string
	Port    string
	Debug   bool
	DataDir string
}

// LoadEnv loads .env when it exists. Variables already set in the environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func Load() Config {
	return Config{
		Host:    getenv("APP_HOST", "0.0.0.0"),
		Port:    getenv("PORT", "8080"),
		Debug:   getbool("APP_DEBUG", true),
		DataDir: getenv("DATA_DIR", "./dados"),
	}
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getbool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
