package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create memo request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/memos", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create memo request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var memo Memo
	if err := c.do(httpReq, "create", &memo); err != nil {
		return nil, err
	}
	return &memo, nil
}

// ListMemos lists the newest memos, optionally only those carrying tag.
func (c *Client) ListMemos(ctx context.Context, tag string, limit int) ([]Memo, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(limit))
	if tag != "" {
		q.Set("filter", fmt.Sprintf("tag in [%q]", tag))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/memos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list memos request: %w", err)
	}

	var listResp struct {
		Memos []Memo `json:"memos"`
	}
	if err := c.do(httpReq, "list", &listResp); err != nil {
		return nil, err
	}
	return listResp.Memos, nil
}

func (c *Client) do(httpReq *http.Request, op string, out any) error {
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call memos %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("memos API %s error %d: %s", op, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode memos %s response: %w", op, err)
	}
	return nil
}

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string   `json:"name"`
	UID        string   `json:"uid"`
	Content    string   `json:"content"`
	Visibility string   `json:"visibility"`
	Tags       []string `json:"tags"`
	CreateTime string   `json:"createTime"`
	UpdateTime string   `json:"updateTime"`
}
