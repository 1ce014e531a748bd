package config

type Bot struct {
	// Token of the presentation bot. Empty disables the bot and the alerts.
	Token string `env:"BOT_TOKEN" json:"-"`

	// AllowedChats restricts the bot to these chats. Empty allows everyone.
	AllowedChats []int64 `env:"BOT_ALLOWED_CHATS" envSeparator:","`

	// AlertChatID receives new-deal alerts from the refresher. Zero disables alerts.
	AlertChatID int64 `env:"BOT_ALERT_CHAT_ID"`

	// Watch config for alerts.
	AlertMinRating float64 `env:"BOT_ALERT_MIN_RATING" envDefault:"80"`
	AlertMaxPrice  float64 `env:"BOT_ALERT_MAX_PRICE" envDefault:"5"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func (b Bot) AlertsEnabled() bool {
	return b.Enabled() && b.AlertChatID != 0
}
