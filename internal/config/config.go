package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process-level configuration, read once at startup. Runtime
// behavior (restaurant, display window) lives in the settings store instead
// and is re-read every tick.
type Config struct {
	ListenAddr string

	NovaeBaseURL     string
	NovaeKey         string
	NovaeLang        string
	NovaeTLSInsecure bool

	PollInterval time.Duration

	SettingsBackend string
	SettingsDSN     string

	RestaurantsFile string
}

func FromEnv() (Config, error) {
	// a .env next to the binary is a convenience, not a requirement
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		NovaeBaseURL:    getenv("NOVAE_BASE_URL", "https://api.mynovae.ch"),
		NovaeKey:        getenv("NOVAE_KEY", "CER103"),
		NovaeLang:       getenv("NOVAE_LANG", "en"),
		SettingsBackend: getenv("SETTINGS_BACKEND", "sqlite"),
		SettingsDSN:     getenv("SETTINGS_DSN", "menusign.db"),
		RestaurantsFile: os.Getenv("RESTAURANTS_FILE"),
	}

	cfg.NovaeTLSInsecure = getenv("NOVAE_TLS_INSECURE", "1") == "1"

	pollSec, err := strconv.Atoi(getenv("MENU_POLL_SECONDS", "900"))
	if err != nil || pollSec < 1 {
		return Config{}, fmt.Errorf("invalid MENU_POLL_SECONDS")
	}
	cfg.PollInterval = time.Duration(pollSec) * time.Second

	return cfg, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
