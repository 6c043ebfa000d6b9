// internal/intro/client.go
package intro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-arena-fps/internal/defs"
)

// Intro is the boss display name and one-line taunt shown before a boss fight.
type Intro struct {
	Name string `json:"name"`
	Line string `json:"line"`
}

// Client requests boss intros from the external text-generation service.
// Any failure degrades to a deterministic fallback; there are no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type introRequest struct {
	Level       int  `json:"level"`
	NewGamePlus bool `json:"newGamePlus"`
}

// NewClient creates a new intro client. An empty URL disables requests
// entirely: Fetch then always reports an error and callers fall back.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Fetch asks the service for a boss intro. One attempt, no retries.
func (c *Client) Fetch(level int, newGamePlus bool) (Intro, error) {
	if c.baseURL == "" {
		return Intro{}, fmt.Errorf("intro service not configured")
	}

	jsonData, err := json.Marshal(introRequest{Level: level, NewGamePlus: newGamePlus})
	if err != nil {
		return Intro{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/boss-intro", c.baseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return Intro{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Intro{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Intro{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Intro{}, fmt.Errorf("intro service error (status %d): %s", resp.StatusCode, string(body))
	}

	var in Intro
	if err := json.Unmarshal(body, &in); err != nil {
		return Intro{}, fmt.Errorf("failed to parse response: %w", err)
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Line = strings.TrimSpace(in.Line)
	if in.Name == "" || in.Line == "" {
		return Intro{}, fmt.Errorf("intro service returned empty payload")
	}
	return in, nil
}

// Fallback returns the deterministic intro for a boss tier, used whenever
// the service fails or returns unusable data.
func Fallback(def defs.BossDefinition) Intro {
	return Intro{Name: def.FallbackName, Line: def.FallbackLine}
}
