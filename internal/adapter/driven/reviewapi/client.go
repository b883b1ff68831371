// Package reviewapi implements the ReviewClient port against the HITL
// review REST API.
package reviewapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// Compile-time interface satisfaction check.
var _ driven.ReviewClient = (*Client)(nil)

// APIError is a non-2xx response from the review API. Detail carries the
// backend's error message when one was provided.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("review api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("review api: %s (status %d)", e.Detail, e.StatusCode)
}

// Client implements the driven.ReviewClient port over plain HTTP with the
// following transport stack:
//  1. httpcache (in-memory response caching for repeated GETs)
//  2. net/http client with a hard per-request timeout
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// NewClient creates a review API client for the given base URL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return &Client{
		http: &http.Client{
			Transport: httpcache.NewMemoryCacheTransport(),
			Timeout:   timeout,
		},
		baseURL: u,
	}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return &Client{http: httpClient, baseURL: u}, nil
}

// ListItems fetches one page of review items. The parameter codec already
// omits defaulted fields, so the wire query stays minimal.
func (c *Client) ListItems(ctx context.Context, params query.Params) (*model.ItemPage, error) {
	var page model.ItemPage
	if err := c.do(ctx, http.MethodGet, "/api/review/items", query.Encode(params), nil, &page); err != nil {
		return nil, fmt.Errorf("listing review items: %w", err)
	}
	return &page, nil
}

// GetItem fetches a single review item. Returns (nil, nil) when the
// backend reports 404.
func (c *Client) GetItem(ctx context.Context, reviewID int) (*model.ReviewItem, error) {
	var item model.ReviewItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/review/items/%d", reviewID), nil, nil, &item)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting review item %d: %w", reviewID, err)
	}
	return &item, nil
}

// updateItemResponse is the PUT response envelope.
type updateItemResponse struct {
	Success bool             `json:"success"`
	Item    model.ReviewItem `json:"item"`
}

// UpdateItem applies a status and/or human-review update to one item.
func (c *Client) UpdateItem(ctx context.Context, reviewID int, update model.ItemUpdate) (*model.ReviewItem, error) {
	var resp updateItemResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/review/items/%d", reviewID), nil, update, &resp)
	if err != nil {
		return nil, fmt.Errorf("updating review item %d: %w", reviewID, err)
	}
	return &resp.Item, nil
}

// bulkUpdateRequest is the POST body envelope for bulk updates.
type bulkUpdateRequest struct {
	Updates []model.BulkItemUpdate `json:"updates"`
}

// bulkUpdateResponse is the bulk-update response envelope.
type bulkUpdateResponse struct {
	Success      bool     `json:"success"`
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors"`
}

// BulkUpdate applies several item updates in one request.
func (c *Client) BulkUpdate(ctx context.Context, updates []model.BulkItemUpdate) (*model.BulkUpdateResult, error) {
	var resp bulkUpdateResponse
	err := c.do(ctx, http.MethodPost, "/api/review/bulk-update", nil, bulkUpdateRequest{Updates: updates}, &resp)
	if err != nil {
		return nil, fmt.Errorf("bulk updating %d items: %w", len(updates), err)
	}
	return &model.BulkUpdateResult{UpdatedCount: resp.UpdatedCount, Errors: resp.Errors}, nil
}

// Summary fetches the review-progress snapshot.
func (c *Client) Summary(ctx context.Context) (*model.Summary, error) {
	var s model.Summary
	if err := c.do(ctx, http.MethodGet, "/api/review/summary", nil, nil, &s); err != nil {
		return nil, fmt.Errorf("fetching review summary: %w", err)
	}
	return &s, nil
}

// healthResponse is the health endpoint body.
type healthResponse struct {
	Status string `json:"status"`
	Loaded bool   `json:"loaded"`
}

// Health checks that the backend is reachable and has a review file loaded.
func (c *Client) Health(ctx context.Context) error {
	var h healthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &h); err != nil {
		return fmt.Errorf("review api health: %w", err)
	}
	if !h.Loaded {
		return errors.New("review api health: no review file loaded")
	}
	return nil
}

// do performs one request against the backend. A non-2xx status becomes an
// *APIError carrying the backend's "detail" message when present.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = path
	if q != nil {
		u.RawQuery = q.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&detail); decodeErr == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
