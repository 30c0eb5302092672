package notifier

import (
	"net/http"
	"reflect"
	"testing"
)

func TestPollClient_SharesNotifierTransport(t *testing.T) {
	tn := NewTelegramNotifier("tok", "chat", "http://proxy.internal:8080")

	client := tn.pollClient()
	if client.Transport != tn.Client.Transport {
		t.Error("poll client must reuse the notifier's transport so proxy settings apply to getUpdates")
	}
	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", client.Transport)
	}
	if transport.Proxy == nil {
		t.Error("configured proxy must carry over to the poll client")
	}
	if client.Timeout <= tn.Client.Timeout {
		t.Error("poll timeout must outlast the long-poll window")
	}
}

func msg(text string) *struct {
	Text string `json:"text"`
} {
	return &struct {
		Text string `json:"text"`
	}{Text: text}
}

func TestDispatchUpdates(t *testing.T) {
	tn := NewTelegramNotifier("tok", "chat", "")

	var commands []string
	handler := func(command string) string {
		commands = append(commands, command)
		return "" // no reply, nothing sent
	}

	updates := []pollUpdate{
		{UpdateID: 5, Message: msg("  /scan ")},
		{UpdateID: 6},                         // no message, offset only
		{UpdateID: 7, Message: msg("   ")},    // blank text skipped
		{UpdateID: 8, Message: msg("/config")},
	}

	offset := tn.dispatchUpdates(updates, 0, handler)
	if offset != 9 {
		t.Errorf("expected next offset 9, got %d", offset)
	}
	if !reflect.DeepEqual(commands, []string{"/scan", "/config"}) {
		t.Errorf("expected trimmed commands [/scan /config], got %v", commands)
	}
}

func TestDispatchUpdates_EmptyBatchKeepsOffset(t *testing.T) {
	tn := NewTelegramNotifier("tok", "chat", "")
	if got := tn.dispatchUpdates(nil, 42, func(string) string { return "" }); got != 42 {
		t.Errorf("empty batch must keep the offset, got %d", got)
	}
}
