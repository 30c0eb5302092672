package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// CommandHandler produces a reply for a chat command such as /scan.
// An empty reply means nothing is sent back.
type CommandHandler func(command string) string

// pollUpdate is the subset of a Telegram update the scanner cares about.
type pollUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
	} `json:"message"`
}

// pollClient builds the long-poll HTTP client. It reuses the notifier's
// transport so a configured proxy covers getUpdates as well as
// sendMessage; the timeout must outlast the 30s long-poll window.
func (t *TelegramNotifier) pollClient() *http.Client {
	return &http.Client{
		Timeout:   35 * time.Second,
		Transport: t.Client.Transport,
	}
}

// StartPolling long-polls getUpdates and feeds each command to the
// handler. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	client := t.pollClient()
	offset := 0

	for ctx.Err() == nil {
		updates, err := t.fetchUpdates(ctx, client, offset)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("[WARN] poll updates: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			continue
		}
		offset = t.dispatchUpdates(updates, offset, handler)
	}
	log.Println("[INFO] Telegram polling stopped")
}

func (t *TelegramNotifier) fetchUpdates(ctx context.Context, client *http.Client, offset int) ([]pollUpdate, error) {
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?offset=%d&timeout=30", t.BotToken, offset)
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create updates request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read updates: %w", err)
	}
	var result struct {
		OK     bool         `json:"ok"`
		Result []pollUpdate `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return result.Result, nil
}

// dispatchUpdates runs the handler for every command in a batch and
// returns the next getUpdates offset. Updates without message text only
// advance the offset.
func (t *TelegramNotifier) dispatchUpdates(updates []pollUpdate, offset int, handler CommandHandler) int {
	for _, u := range updates {
		if u.UpdateID >= offset {
			offset = u.UpdateID + 1
		}
		if u.Message == nil {
			continue
		}
		command := strings.TrimSpace(u.Message.Text)
		if command == "" {
			continue
		}
		log.Printf("[INFO] received command: %s", command)
		if reply := handler(command); reply != "" {
			if err := t.Send(reply); err != nil {
				log.Printf("[ERROR] send reply: %v", err)
			}
		}
	}
	return offset
}
