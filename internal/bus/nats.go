package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-log/log"
)

// NatsMirror republishes every bus Event onto an embedded NATS server for
// external subscribers (dashboards, analytics, other processes). It is
// strictly additive: per spec.md §4.9/§1.2, the NATS hop never gates
// command completion, so Mirror is wired as an ordinary (possibly slow)
// Subscribe handler rather than something callers wait on.
type NatsMirror struct {
	ns   *server.Server
	conn *nats.Conn

	startupTimeout time.Duration
	host           string
	port           int
	subjectPrefix  string
}

// NatsMirrorOpt configures a NatsMirror before Start.
type NatsMirrorOpt func(*NatsMirror)

// WithHost sets the embedded server's bind host.
func WithHost(host string) NatsMirrorOpt {
	return func(m *NatsMirror) { m.host = host }
}

// WithPort sets the embedded server's bind port.
func WithPort(port int) NatsMirrorOpt {
	return func(m *NatsMirror) { m.port = port }
}

// WithSubjectPrefix sets the NATS subject prefix events are published
// under (default "mudcore.events").
func WithSubjectPrefix(prefix string) NatsMirrorOpt {
	return func(m *NatsMirror) { m.subjectPrefix = prefix }
}

// NewNatsMirror constructs (but does not start) an embedded NATS server
// to mirror bus events onto.
func NewNatsMirror(opts ...NatsMirrorOpt) (*NatsMirror, error) {
	m := &NatsMirror{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
		subjectPrefix:  "mudcore.events",
	}
	for _, opt := range opts {
		opt(m)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   m.host,
		Port:   m.port,
		NoSigs: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedded nats server: %w", err)
	}
	m.ns = ns
	return m, nil
}

// Start boots the embedded server and blocks until ctx is cancelled,
// mirroring the teacher's nats.NatsServer.Start lifecycle.
func (m *NatsMirror) Start(ctx context.Context) error {
	m.ns.Start()
	if !m.ns.ReadyForConnections(m.startupTimeout) {
		return fmt.Errorf("embedded nats server not ready for connections")
	}

	conn, err := nats.Connect(m.clientURL())
	if err != nil {
		return fmt.Errorf("connecting internal nats client: %w", err)
	}
	m.conn = conn

	log.GetLogger(ctx).Infof("event bus nats mirror listening on %s", m.ns.Addr())

	<-ctx.Done()
	m.conn.Close()
	m.ns.Shutdown()
	m.ns.WaitForShutdown()
	return nil
}

func (m *NatsMirror) clientURL() string {
	return fmt.Sprintf("nats://%s:%d", m.host, m.port)
}

// Handler returns a bus.Handler that republishes events onto
// "<prefix>.<event_type>". Intended use: bus.Subscribe for every event
// type the host cares about mirroring, e.g. by calling AttachAll.
func (m *NatsMirror) Handler(ctx context.Context) Handler {
	return func(_ context.Context, evt Event) {
		if m.conn == nil {
			return
		}
		payload, err := json.Marshal(evt)
		if err != nil {
			log.GetLogger(ctx).Errorf("marshalling event for nats mirror: %s", err.Error())
			return
		}
		subject := fmt.Sprintf("%s.%s", m.subjectPrefix, evt.Type)
		if err := m.conn.Publish(subject, payload); err != nil {
			log.GetLogger(ctx).Errorf("publishing mirrored event to %s: %s", subject, err.Error())
		}
	}
}

// AttachAll subscribes the mirror's Handler to every event type on b.
func (m *NatsMirror) AttachAll(ctx context.Context, b *Bus) {
	for _, t := range []EventType{
		EventItemTaken, EventItemDropped, EventItemUsed, EventItemGiven,
		EventEquipmentChange, EventContainerUnlocked, EventContainerItemAdded,
		EventContainerItemRemoved, EventLocationChange, EventInventoryChange,
		EventWorldStateChange, EventSystemShutdown, EventPeriodicSave,
	} {
		b.Subscribe(t, m.Handler(ctx))
	}
}
