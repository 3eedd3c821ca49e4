package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cartas_marketplace/internal/usecase/interfaces"
)

// WebhookNotifier POSTs each Message as JSON to a fixed URL.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookNotifier{url: url, httpClient: &http.Client{Timeout: timeout}}
}

func (n *WebhookNotifier) Notify(ctx context.Context, userID string, template string, payload map[string]any) error {
	msg := newMessage(userID, template, payload)
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Notification-Id", msg.ID)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notification webhook failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	log.Printf("[notification][webhook] delivered id=%s user_id=%s template=%s", msg.ID, userID, template)
	return nil
}
