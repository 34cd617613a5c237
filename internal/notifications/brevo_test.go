package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewBrevoClientUnconfigured(t *testing.T) {
	if c := NewBrevoClient("", "sender@example.com", "Sender", false); c != nil {
		t.Fatal("expected nil client without api key")
	}
	if c := NewBrevoClient("key", "", "Sender", false); c != nil {
		t.Fatal("expected nil client without sender email")
	}
}

func TestContactNotificationTemplate(t *testing.T) {
	var buf bytes.Buffer
	err := contactNotificationTmpl.Execute(&buf, struct {
		Name     string
		Email    string
		Subject  string
		Message  string
		Received string
	}{
		Name:     "Jane <script>",
		Email:    "jane@example.com",
		Subject:  "Hello",
		Message:  "Nice site",
		Received: "Mon, 01 Jan 2024 00:00:00 UTC",
	})
	if err != nil {
		t.Fatalf("template error: %v", err)
	}
	body := buf.String()
	if !strings.Contains(body, "jane@example.com") {
		t.Fatal("body missing sender email")
	}
	if strings.Contains(body, "<script>") {
		t.Fatal("template must escape HTML in user input")
	}
}

func TestSendContactNotification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "test-key" {
			t.Errorf("missing api-key header")
		}
		var payload brevoEmail
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if len(payload.To) != 1 || payload.To[0].Email != "owner@example.com" {
			t.Errorf("to = %+v", payload.To)
		}
		if !strings.HasPrefix(payload.Subject, "Portfolio contact:") {
			t.Errorf("subject = %q", payload.Subject)
		}
		if payload.Headers != nil {
			t.Errorf("sandbox header set on non-sandbox client")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"messageId": "msg-123"})
	}))
	defer srv.Close()

	c := NewBrevoClient("test-key", "sender@example.com", "Sender", false)
	c.endpoint = srv.URL

	id, err := c.SendContactNotification(context.Background(), "owner@example.com", "Jane", "jane@example.com", "Hello", "Nice site", time.Now())
	if err != nil {
		t.Fatalf("SendContactNotification error: %v", err)
	}
	if id != "msg-123" {
		t.Fatalf("messageId = %q", id)
	}
}
