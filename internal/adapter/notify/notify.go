// Package notify delivers run reports.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Webhook posts the report as {"channel": ..., "text": ...} JSON to a chat
// webhook. Any 2xx answer counts as delivered.
type Webhook struct {
	url     string
	channel string
	client  *http.Client
}

// NewWebhook returns a webhook notifier.
func NewWebhook(url, channel string, timeout time.Duration) *Webhook {
	return &Webhook{url: url, channel: channel, client: &http.Client{Timeout: timeout}}
}

type message struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

// Send delivers text to the webhook.
func (w *Webhook) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(message{Channel: w.channel, Text: text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook answered %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	return nil
}

// Log writes the report to the structured log. It is used when no webhook
// is configured.
type Log struct {
	logger *slog.Logger
}

// NewLog returns a log notifier.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Send logs text at info level.
func (l *Log) Send(ctx context.Context, text string) error {
	l.logger.InfoContext(ctx, "run report", slog.String("report", text))
	return nil
}
