package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Config is the root JSON configuration decoded by service.NewApp for the
// "serve" mode, mirroring the teacher's cmd/mud/command/Config layout.
type Config struct {
	GameID          string            `json:"game_id"`
	TickInterval    string            `json:"tick_interval"`
	DefaultEntityID string            `json:"default_entity_id"`
	DefaultLocation string            `json:"default_location"`
	Storage         StorageConfig     `json:"storage"`
	Persistence     PersistenceConfig `json:"persistence"`
	Nats            NatsConfig        `json:"nats"`
	LLM             LLMConfig         `json:"llm"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.GameID == "" {
		el.Add(fmt.Errorf("game_id is required"))
	}
	if c.DefaultEntityID == "" {
		el.Add(fmt.Errorf("default_entity_id is required"))
	}
	if c.DefaultLocation == "" {
		el.Add(fmt.Errorf("default_location is required"))
	}

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Persistence.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.LLM.Validate())

	return el.Err()
}
