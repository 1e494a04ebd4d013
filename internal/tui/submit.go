package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const submitPath = "/api/v1/quick-add"

type submitRequest struct {
	Text string `json:"text"`
}

type submitEnvelope struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      struct {
		Title     string   `json:"title"`
		MemoURL   string   `json:"memo_url"`
		Conflicts []string `json:"conflicts"`
	} `json:"data"`
}

// NewHTTPSubmitter posts lines to a running quick-entry server.
func NewHTTPSubmitter(baseURL string) SubmitFunc {
	client := &http.Client{Timeout: 20 * time.Second}
	endpoint := strings.TrimRight(baseURL, "/") + submitPath

	return func(ctx context.Context, text string) (string, error) {
		body, err := json.Marshal(submitRequest{Text: text})
		if err != nil {
			return "", err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("failed to reach server: %w", err)
		}
		defer resp.Body.Close()

		var env submitEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%s (status %d)", env.Message, resp.StatusCode)
		}

		summary := env.Data.Title
		if env.Data.MemoURL != "" {
			summary += "  " + env.Data.MemoURL
		}
		if len(env.Data.Conflicts) > 0 {
			summary += "  ⚠ " + strings.Join(env.Data.Conflicts, ", ")
		}
		return summary, nil
	}
}
