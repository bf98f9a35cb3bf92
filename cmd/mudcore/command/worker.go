package command

import (
	"context"
	"fmt"
	"os"

	"github.com/ashfall/mudcore/internal/bus"
	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/engine"
	"github.com/ashfall/mudcore/internal/persistence"
	"github.com/ashfall/mudcore/internal/pipeline"
	"github.com/ashfall/mudcore/internal/session"
	"github.com/ashfall/mudcore/internal/world"
	"github.com/pixil98/go-service/service"
)

// BuildWorkers assembles the simulation core and its background workers,
// mirroring cmd/mud/command/worker.go's BuildWorkers shape: cast the
// config, construct collaborators bottom-up, return a service.WorkerList.
func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	ctx := context.Background()

	cat := catalog.New()
	if err := cat.Load(ctx, cfg.Storage.CatalogDir); err != nil {
		return nil, fmt.Errorf("loading item catalog: %w", err)
	}

	w := world.New(cat)
	eventBus := bus.New()
	eng := engine.New(w, eventBus)

	backend := persistence.NewFileBackend(cfg.Persistence.Dir)
	if cfg.Persistence.KeepCount > 0 {
		backend.KeepCount = cfg.Persistence.KeepCount
	}

	mgr := persistence.NewManager(backend, w, cfg.GameID)
	mgr.AutoSaveEnabled = cfg.Persistence.AutoSaveEnabled
	mgr.AutoSaveInterval = cfg.Persistence.autoSaveInterval()
	mgr.BackupInterval = cfg.Persistence.backupInterval()
	if cfg.Persistence.DirtyCountThreshold > 0 {
		mgr.DirtyCountThreshold = cfg.Persistence.DirtyCountThreshold
	}

	if _, err := mgr.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading existing save for %s: %w", cfg.GameID, err)
	}
	mgr.AttachBus(eventBus)

	tagger := pipeline.NewEntityTagger(cat.AllNames())
	pipe := pipeline.New(eng, tagger, cfg.LLM.newClient())

	w.Player(cfg.DefaultEntityID, cfg.DefaultLocation)
	localSession := session.NewSession(cfg.DefaultEntityID, pipe, os.Stdin, os.Stdout)

	workers := service.WorkerList{
		"persistence": mgr,
		"session":     localSession,
	}

	mirror, err := cfg.Nats.newMirror()
	if err != nil {
		return nil, fmt.Errorf("creating nats mirror: %w", err)
	}
	if mirror != nil {
		mirror.AttachAll(ctx, eventBus)
		workers["nats_mirror"] = mirror
	}

	return workers, nil
}
