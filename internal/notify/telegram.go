// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify relays quote requests to the sales team over the
// Telegram Bot API. Notification failures never fail the primary
// operation — the caller gets a boolean back and the quote record is
// persisted regardless.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Telegram sends messages through the Bot API's sendMessage method.
// With no token or chat id configured it is disabled and every send is
// a silent no-op error.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// NewTelegram creates a Telegram notifier. token and chatID may be
// empty, which leaves the notifier disabled.
func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL overrides the API host. Tests point it at a local server.
func (t *Telegram) SetBaseURL(url string) {
	t.baseURL = strings.TrimSuffix(url, "/")
}

// Enabled reports whether credentials are configured.
func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts one text message to the configured chat.
func (t *Telegram) Send(ctx context.Context, text string) error {
	if !t.Enabled() {
		return fmt.Errorf("telegram: not configured")
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: t.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("telegram marshal: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result sendMessageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("telegram unmarshal: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram: %s", result.Description)
	}
	return nil
}

// QuoteRequest formats and sends the notification for a new quote request.
func (t *Telegram) QuoteRequest(ctx context.Context, customerName, phoneNumber, productName, productID string) error {
	var b strings.Builder
	b.WriteString("New quote request\n")
	fmt.Fprintf(&b, "Customer: %s\n", customerName)
	fmt.Fprintf(&b, "Phone: %s\n", phoneNumber)
	fmt.Fprintf(&b, "Product: %s (%s)", productName, productID)
	return t.Send(ctx, b.String())
}
