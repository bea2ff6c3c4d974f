// Package client talks to the shopping-list API and keeps an in-memory
// copy of the list synchronized with it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"shoplist/models"
)

// API is the wire-level repository surface the store dispatches against.
type API interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)
	ToggleItem(ctx context.Context, id string) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// HTTPClient implements API over the REST surface. Any non-success
// envelope or transport failure comes back as a plain error whose
// message is fit to show the user.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ API = (*HTTPClient)(nil)

// NewHTTPClient returns a client rooted at baseURL, e.g.
// "http://localhost:5000/api".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, client: &http.Client{}}
}

// envelope mirrors models.Response with the payload left raw so each
// call can decode it into the right shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/shopping-list", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPost, "/shopping-list", req, &item)
	return item, err
}

func (c *HTTPClient) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPut, "/shopping-list/"+id, patch, &item)
	return item, err
}

func (c *HTTPClient) ToggleItem(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPatch, "/shopping-list/"+id+"/toggle", nil, &item)
	return item, err
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/shopping-list/"+id, nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("server returned %s with an unreadable body", resp.Status)
	}
	if !env.Success {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return fmt.Errorf("request failed with status %s", resp.Status)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
