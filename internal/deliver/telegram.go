package deliver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"newsbrief/internal/metrics"
)

// Telegram messages top out around 4096 characters; leave headroom.
const telegramMessageLimit = 4000

// Telegram posts digest notifications to a chat or channel.
type Telegram struct {
	token  string
	chatID string
	client *http.Client
}

// NewTelegram builds a sender for the given bot token and chat.
func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send delivers text with retries and exponential backoff. Oversized
// messages are truncated to the Telegram limit.
func (t *Telegram) Send(text string) error {
	if len(text) > telegramMessageLimit {
		text = text[:telegramMessageLimit]
	}

	const maxRetries = 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := t.sendOnce(text)
		if err == nil {
			metrics.Global.IncrementDeliveriesSent()
			return nil
		}

		slog.Warn("telegram send failed", "attempt", attempt, "error", err)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<attempt) * time.Second)
		}
	}

	return fmt.Errorf("telegram send failed after %d attempts", maxRetries)
}

func (t *Telegram) sendOnce(text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.token)

	payload := map[string]interface{}{
		"chat_id":                  t.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := t.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API status %d", resp.StatusCode)
	}
	return nil
}
