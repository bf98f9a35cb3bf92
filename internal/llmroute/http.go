package llmroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient documents the real wire contract for a chat-completion
// tool-routing endpoint without this module depending on a live network
// call to build or test (SPEC_FULL.md §6). It is not wired as the default;
// MockClient is.
type HTTPClient struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// NewHTTPClient builds an HTTPClient with a bounded default transport.
func NewHTTPClient(endpoint, apiKey string) *HTTPClient {
	return &HTTPClient{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type toolRoutingRequest struct {
	Input string `json:"input"`
	Tools []Tool `json:"tools"`
	// SystemPrompt carries the disambiguation rule spec.md §4.7 requires:
	// the "take off X" family always routes to "unequip", never "take".
	SystemPrompt string `json:"system_prompt"`
}

type toolRoutingResponse struct {
	Tool      Tool   `json:"tool"`
	Argument  string `json:"argument"`
	Succeeded bool   `json:"succeeded"`
}

const disambiguationPrompt = `Select exactly one tool for the player's input. ` +
	`The phrases "take off X" and "take X off" always select "unequip", never "take".`

// Route posts the fixed tool schema plus input text to Endpoint and decodes
// the selected tool. Honors ctx's deadline; callers should wrap ctx with
// context.WithTimeout per spec.md §5's cancellation requirement and treat a
// context.DeadlineExceeded error as a signal to fall back to the
// suggestions path.
func (c *HTTPClient) Route(ctx context.Context, text string) (Route, error) {
	body, err := json.Marshal(toolRoutingRequest{Input: text, Tools: AllTools, SystemPrompt: disambiguationPrompt})
	if err != nil {
		return Route{}, fmt.Errorf("encoding tool-routing request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Route{}, fmt.Errorf("building tool-routing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("calling tool-routing endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Route{}, fmt.Errorf("tool-routing endpoint returned status %d", resp.StatusCode)
	}

	var out toolRoutingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Route{}, fmt.Errorf("decoding tool-routing response: %w", err)
	}

	return Route{Tool: out.Tool, Argument: out.Argument, Succeeded: out.Succeeded}, nil
}
