package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("https://www.cheapshark.com/api/1.0/deals?storeID=1&upperPrice=200", cfg.CheapShark.DealsURL)
	rq.Equal("https://api.rawg.io/api", cfg.Rawg.BaseURL)
	rq.False(cfg.Rawg.PreferHighRes)
	rq.Zero(cfg.HTTP.ClientTimeout)
	rq.Equal(30*time.Minute, cfg.Refresh.Interval)
	rq.Equal(slog.LevelInfo, cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("RAWG_API_KEY", "secret")
	t.Setenv("RAWG_PREFER_HIGH_RES", "true")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_ALLOWED_CHATS", "1,-100200")
	t.Setenv("BOT_ALERT_CHAT_ID", "42")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("secret", cfg.Rawg.APIKey)
	rq.True(cfg.Rawg.PreferHighRes)
	rq.Equal(5*time.Second, cfg.HTTP.ClientTimeout)
	rq.Equal([]int64{1, -100200}, cfg.Bot.AllowedChats)
	rq.True(cfg.Bot.Enabled())
	rq.True(cfg.Bot.AlertsEnabled())
	rq.Equal(slog.LevelDebug, cfg.Log.Level)
}

func TestLoadInvalidValue(t *testing.T) {
	rq := require.New(t)

	t.Setenv("REFRESH_INTERVAL", "often")

	_, err := config.Load()
	rq.Error(err)
}

func TestBotDisabledWithoutToken(t *testing.T) {
	rq := require.New(t)

	bot := config.Bot{AlertChatID: 42}
	rq.False(bot.Enabled())
	rq.False(bot.AlertsEnabled())
}
