package command

import (
	"github.com/ashfall/mudcore/internal/llmroute"
	"github.com/pixil98/go-errors"
)

// LLMConfig selects the Command Pipeline's tool-routing fallback client
// (spec.md §4.7 stage 5). With no endpoint configured, the pipeline falls
// back to the deterministic MockClient rather than failing to build.
type LLMConfig struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
}

func (c *LLMConfig) Validate() error {
	el := errors.NewErrorList()
	return el.Err()
}

func (c *LLMConfig) newClient() llmroute.Client {
	if c.Endpoint == "" {
		return llmroute.NewMockClient()
	}
	return llmroute.NewHTTPClient(c.Endpoint, c.APIKey)
}
