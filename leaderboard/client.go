package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to a leaderboard server. The game constructs one and hands
// it to whatever needs to submit scores.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL. A nil httpClient gets a default
// with a short timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SaveScore submits a run. A request the server rejects wraps
// ErrInvalidRequest.
func (c *Client) SaveScore(ctx context.Context, req SaveRequest) (SaveResult, error) {
	if err := req.Validate(); err != nil {
		return SaveResult{}, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return SaveResult{}, fmt.Errorf("leaderboard: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/save-score", bytes.NewReader(body))
	if err != nil {
		return SaveResult{}, fmt.Errorf("leaderboard: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var result SaveResult
	if err := c.do(httpReq, &result); err != nil {
		return SaveResult{}, err
	}
	return result, nil
}

// TopScores fetches the best entries, ranked from 1.
func (c *Client) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(ClampLimit(limit)))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/leaderboard?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}

	var page struct {
		Entries []Entry `json:"entries"`
	}
	if err := c.do(httpReq, &page); err != nil {
		return nil, err
	}
	return page.Entries, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: %s", ErrInvalidRequest, apiErr.Error)
		}
		return fmt.Errorf("leaderboard: %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, apiErr.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("leaderboard: decode response: %w", err)
	}
	return nil
}
