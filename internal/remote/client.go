package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lamnguyen/habitkit/internal/models"
)

const requestTimeout = 15 * time.Second

// Client talks to the remote habit collection: a flat resource
// supporting list, create, and delete-by-id. It never interprets the
// remote id format.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// List fetches the full remote collection.
func (c *Client) List(ctx context.Context) ([]models.RemoteHabit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/habit", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing remote habits: unexpected status %s", resp.Status)
	}

	var habits []models.RemoteHabit
	if err := json.NewDecoder(resp.Body).Decode(&habits); err != nil {
		return nil, fmt.Errorf("decoding remote habits: %w", err)
	}
	return habits, nil
}

// Create adds one record to the remote collection.
func (c *Client) Create(ctx context.Context, payload models.HabitPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/habit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("creating remote habit %q: unexpected status %s", payload.Title, resp.Status)
	}
	return nil
}

// Delete removes one record from the remote collection.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/habit/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("deleting remote habit %s: unexpected status %s", id, resp.Status)
	}
	return nil
}

// drain discards the body so the connection can be reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
