package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	corenotify "github.com/mossyhq/binminder/core/notify"
)

func TestGotifySendFields(t *testing.T) {
	var title, message, priority string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
			return
		}
		title = r.FormValue("title")
		message = r.FormValue("message")
		priority = r.FormValue("priority")
	}))
	defer srv.Close()

	cfg := GotifyConfig{Enabled: true, URL: srv.URL, TimeoutSeconds: 5}
	err := NewGotifyNotifier(cfg).Send(context.Background(), corenotify.Reminder("Black Bin"))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if title != "Bin Reminder" {
		t.Fatalf("unexpected title %q", title)
	}
	if message != "Put out Black Bin for tomorrow" {
		t.Fatalf("unexpected message %q", message)
	}
	if priority != "5" {
		t.Fatalf("unexpected priority %q", priority)
	}
}

func TestGotifySendBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := GotifyConfig{Enabled: true, URL: srv.URL, TimeoutSeconds: 5}
	err := NewGotifyNotifier(cfg).Send(context.Background(), corenotify.Reminder("Green Bin"))
	if err == nil {
		t.Fatalf("expected error on 401")
	}
}
