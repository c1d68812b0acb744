package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/omarshaarawi/matchview/internal/config"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Data) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// StatusError is returned when the data server answers with anything other
// than 200 OK.
type StatusError struct {
	StatusCode int
	Resource   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: Could not load %s. Make sure the file exists and the data directory is served over HTTP.", e.StatusCode, e.Resource)
}

// TransportError is returned when the resource could not be reached at all,
// which in practice means the base URL is wrong or is not an HTTP location.
type TransportError struct {
	Resource string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Cannot load %s. The data files must be served over HTTP (set DATA_BASE_URL to an http:// or https:// location, or DATA_DIR to have this server publish them under /data).", e.Resource)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (c *Client) Get(ctx context.Context, resource string, result interface{}) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{Resource: resource, Err: fmt.Errorf("error creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Resource: resource}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding %s: %w", resource, err)
	}

	return nil
}
