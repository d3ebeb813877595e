package smash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient talks to the smash data service over its JSON API.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new data service client.
func NewClient(baseURL string) Client {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// GetPlayers fetches the full player roster with ratings and lifetime counters.
func (c *APIClient) GetPlayers(ctx context.Context) ([]Player, error) {
	var players []Player
	if err := c.getJSON(ctx, "/players", &players); err != nil {
		return nil, fmt.Errorf("error fetching players: %w", err)
	}
	log.Debug("Fetched players from data service", "count", len(players))
	return players, nil
}

// GetMatches fetches match history, pre-sorted newest-first by the service.
func (c *APIClient) GetMatches(ctx context.Context) ([]Match, error) {
	var matches []Match
	if err := c.getJSON(ctx, "/matches", &matches); err != nil {
		return nil, fmt.Errorf("error fetching matches: %w", err)
	}
	log.Debug("Fetched matches from data service", "count", len(matches))
	return matches, nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, out any) error {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from data service", "url", url, "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
