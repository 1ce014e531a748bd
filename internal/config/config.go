package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App
	CheapShark CheapShark
	Rawg       Rawg
	HTTP       HTTP
	Bot        Bot
	Refresh    Refresh
	Log        Log
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"gamedeals"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type CheapShark struct {
	DealsURL string `env:"CHEAPSHARK_DEALS_URL" envDefault:"https://www.cheapshark.com/api/1.0/deals?storeID=1&upperPrice=200"`
	BaseURL  string `env:"CHEAPSHARK_BASE_URL" envDefault:"https://api.cheapshark.com/api/1.0"`
}

type Rawg struct {
	BaseURL string `env:"RAWG_BASE_URL" envDefault:"https://api.rawg.io/api"`
	APIKey  string `env:"RAWG_API_KEY" json:"-"`

	// PreferHighRes replaces the deal thumbnail with the metadata image.
	PreferHighRes bool `env:"RAWG_PREFER_HIGH_RES" envDefault:"false"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// ClientTimeout bounds outgoing API calls. Zero means no timeout.
	ClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"0"`
}

type Refresh struct {
	// Interval of the background reload. Zero disables the refresher.
	Interval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30m"`
	DedupTTL time.Duration `env:"REFRESH_DEDUP_TTL" envDefault:"24h"`
}

type Log struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
