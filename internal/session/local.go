// Package session hosts a single local stdio connection onto the Command
// Pipeline, generalizing the teacher's per-connection listener loop
// (internal/listener's ConnectionManager.AcceptConnection / Player.Play)
// down to one process-local reader/writer pair, since this module carries
// no network transport (spec.md §1 non-goal rules out a real telnet/ssh
// listener here).
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/ashfall/mudcore/internal/display"
	"github.com/ashfall/mudcore/internal/engine"
	"github.com/ashfall/mudcore/internal/pipeline"
	"github.com/pixil98/go-log/log"
)

// Session reads one line of input at a time, runs it through a Pipeline
// for EntityID, and writes the rendered result back out. It satisfies
// service.Worker so it can be registered in a WorkerList alongside the
// persistence manager and nats mirror.
type Session struct {
	EntityID string
	Pipeline *pipeline.Pipeline
	In       io.Reader
	Out      io.Writer
}

// NewSession builds a Session reading from in and writing to out.
func NewSession(entityID string, p *pipeline.Pipeline, in io.Reader, out io.Writer) *Session {
	return &Session{EntityID: entityID, Pipeline: p, In: in, Out: out}
}

// Start reads lines from In until EOF or ctx cancellation, processing each
// through the Pipeline and writing the resulting message (or failure
// reason) to Out.
func (s *Session) Start(ctx context.Context) error {
	scanner := bufio.NewScanner(s.In)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd, res, err := s.Pipeline.Process(ctx, s.EntityID, line)
		if err != nil {
			log.GetLogger(ctx).Errorf("processing command %q: %s", line, err.Error())
			s.write(ctx, fmt.Sprintf("Something went wrong handling that: %s\n", err.Error()))
			continue
		}

		s.write(ctx, display.Wrap(s.render(cmd, res))+"\n")
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading session input: %w", err)
	}
	return nil
}

func (s *Session) render(cmd *pipeline.Command, res *engine.Result) string {
	if cmd.Action == pipeline.ActionUnknown {
		msg := "I don't understand that."
		if len(cmd.Suggestions) > 0 {
			msg += fmt.Sprintf(" Did you mean: %v?", cmd.Suggestions)
		}
		return msg
	}
	if res == nil {
		return "Okay."
	}
	return res.Message
}

func (s *Session) write(ctx context.Context, msg string) {
	if _, err := io.WriteString(s.Out, msg); err != nil {
		log.GetLogger(ctx).Errorf("writing to session output: %s", err.Error())
	}
}
