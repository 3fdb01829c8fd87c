// Package assistant proxies citizen questions to an external text-completion
// service. The service is opaque: one prompt in, free-form text out. Any
// failure collapses to a fixed offline message so the portal never surfaces
// backend errors to citizens.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/samara-logia/cadaster-portal/pkg/logger"
)

// SystemPrompt fixes the assistant's role for every query.
const SystemPrompt = "You are the official AI Assistant for the Samara Logia City Cadaster Office. " +
	"Answer questions about property registration, land laws, and cadaster procedures in a professional, helpful, and administrative tone."

// OfflineMessage is returned whenever the completion service cannot answer.
const OfflineMessage = "The assistant is currently offline. Please try again later."

type Client struct {
	url    string
	client *http.Client
}

// NewClient builds a client for the completion endpoint. An empty url yields
// a client that always answers with the offline message.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{url: url, client: &http.Client{Timeout: timeout}}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Ask sends the system prompt plus the user query and returns the completion
// text, or the offline message on any failure.
func (c *Client) Ask(ctx context.Context, query string) string {
	if c.url == "" {
		return OfflineMessage
	}

	body, err := json.Marshal(completionRequest{Prompt: SystemPrompt + " User asks: " + query})
	if err != nil {
		logger.Errorf("assistant request marshal: %v", err)
		return OfflineMessage
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		logger.Errorf("assistant request build: %v", err)
		return OfflineMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warnf("assistant unreachable: %v", err)
		return OfflineMessage
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logger.Warnf("assistant returned status %d", resp.StatusCode)
		return OfflineMessage
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Warnf("assistant response decode: %v", err)
		return OfflineMessage
	}
	if out.Text == "" {
		return OfflineMessage
	}
	return out.Text
}
