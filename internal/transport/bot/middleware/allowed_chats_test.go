package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"gamedeals/internal/transport/bot/middleware"
)

func TestUpdateChatID(t *testing.T) {
	testCases := []struct {
		name   string
		update telego.Update
		chatID int64
		ok     bool
	}{
		{
			name:   "Message",
			update: telego.Update{Message: &telego.Message{Chat: telego.Chat{ID: 42}}},
			chatID: 42,
			ok:     true,
		},
		{
			name: "Callback query",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{
				ID:      "q",
				Message: &telego.Message{Chat: telego.Chat{ID: -100500}},
			}},
			chatID: -100500,
			ok:     true,
		},
		{
			name:   "Callback without message",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{ID: "q"}},
		},
		{
			name:   "Other update",
			update: telego.Update{UpdateID: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			chatID, ok := middleware.UpdateChatID(tc.update)
			rq.Equal(tc.ok, ok)
			rq.Equal(tc.chatID, chatID)
		})
	}
}
