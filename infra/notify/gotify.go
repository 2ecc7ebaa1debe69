package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	corenotify "github.com/mossyhq/binminder/core/notify"
)

// GotifyNotifier posts notifications as multipart form data, the wire format
// Gotify's message endpoint accepts.
type GotifyNotifier struct {
	url  string
	http *http.Client
}

// NewGotifyNotifier builds a notifier from the configuration.
func NewGotifyNotifier(cfg GotifyConfig) *GotifyNotifier {
	return &GotifyNotifier{
		url:  cfg.URL,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Send posts the notification with fields title, message and priority.
func (g *GotifyNotifier) Send(ctx context.Context, n corenotify.Notification) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	fields := map[string]string{
		"title":    n.Title,
		"message":  n.Message,
		"priority": strconv.Itoa(n.Priority),
	}
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, excerpt)
	}
	return nil
}
