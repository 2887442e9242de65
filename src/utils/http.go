package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GetJSON fetches url and unmarshals the JSON response body into out. Any
// transport error, non-200 status, or unmarshal failure is returned as a
// single wrapped error.
func GetJSON(ctx context.Context, url string, out interface{}) error {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to fetch %s: %w", url, err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("GetJSON: failed to fetch %s: %s", url, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GetJSON: failed to parse response body: %w", err)
	}

	return nil
}
