package command

import (
	"fmt"

	"github.com/ashfall/mudcore/internal/bus"
	"github.com/pixil98/go-errors"
)

// NatsConfig controls the optional embedded NATS mirror (spec.md §4.9 /
// SPEC_FULL.md §1.2): bus events are always dispatched synchronously
// in-process; this only governs whether they're additionally republished
// for external subscribers.
type NatsConfig struct {
	Enabled       bool   `json:"enabled"`
	Host          string `json:"host"`
	Port          int    `json:"port"`
	SubjectPrefix string `json:"subject_prefix"`
}

func (c *NatsConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Enabled && c.Port == 0 {
		el.Add(fmt.Errorf("port must be set when nats mirror is enabled"))
	}

	return el.Err()
}

func (c *NatsConfig) newMirror() (*bus.NatsMirror, error) {
	if !c.Enabled {
		return nil, nil
	}

	var opts []bus.NatsMirrorOpt
	if c.Host != "" {
		opts = append(opts, bus.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, bus.WithPort(c.Port))
	}
	if c.SubjectPrefix != "" {
		opts = append(opts, bus.WithSubjectPrefix(c.SubjectPrefix))
	}

	return bus.NewNatsMirror(opts...)
}
