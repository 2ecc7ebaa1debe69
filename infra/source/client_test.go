package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("1234,559HB\n"))
	}))
	defer srv.Close()

	cfg := Config{URL: srv.URL, AddressCode: "1234"}
	cfg.SetDefaults()
	body, err := NewClient(cfg).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if body != "1234,559HB\n" {
		t.Fatalf("unexpected body %q", body)
	}
	if !strings.Contains(gotUA, "Firefox") {
		t.Fatalf("expected browser user agent, got %q", gotUA)
	}
}

func TestClientFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := Config{URL: srv.URL, AddressCode: "1234"}
	cfg.SetDefaults()
	_, err := NewClient(cfg).Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status error, got %v", err)
	}
	if !strings.Contains(err.Error(), "gone fishing") {
		t.Fatalf("expected body excerpt in error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{AddressCode: "x"}).Validate(); err == nil {
		t.Fatalf("expected error for missing url")
	}
	if err := (Config{URL: "http://x"}).Validate(); err == nil {
		t.Fatalf("expected error for missing address code")
	}
	if err := (Config{URL: "http://x", AddressCode: "1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
