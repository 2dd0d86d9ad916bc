package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"kuma-assistant/pkg/telegram"
)

func TestBot_SendMessage(t *testing.T) {
	var last telegram.SendMessageRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&last)

		switch last.Text {
		case "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 42, "It is 10:15 AM."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last.ChatID != 42 || last.Text != "It is 10:15 AM." {
			t.Errorf("unexpected payload: %+v", last)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		err := bot.SendMessage(ctx, 42, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "chat not found") {
			t.Fatalf("expected API description in error, got %v", err)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 42, "cause_500"); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Long Text Is Cut", func(t *testing.T) {
		long := strings.Repeat("ă", telegram.MaxMessageLength+10)
		if err := bot.SendMessage(ctx, 1, long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := utf8.RuneCountInString(last.Text); n != telegram.MaxMessageLength {
			t.Errorf("expected %d runes, got %d", telegram.MaxMessageLength, n)
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 1, "hi"); err == nil {
			t.Fatalf("expected error for cancelled context")
		}
	})
}
