package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"zimaged/pkg/types"
)

// apiClient is a thin HTTP client for the zimaged API.
type apiClient struct {
	baseURL string
	client  *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	// Timeout=0: generation can take minutes; callers pass context deadlines.
	return &apiClient{baseURL: baseURL, client: &http.Client{Timeout: 0}}
}

func (c *apiClient) Health(ctx context.Context) (types.HealthResponse, error) {
	var out types.HealthResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return out, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("server returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func (c *apiClient) Generate(ctx context.Context, genReq types.GenerateRequest) (types.GenerateResponse, error) {
	var out types.GenerateResponse
	body, err := json.Marshal(genReq)
	if err != nil {
		return out, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr types.ErrorResponse
		if json.Unmarshal(b, &apiErr) == nil && apiErr.Error != "" {
			return out, fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return out, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
