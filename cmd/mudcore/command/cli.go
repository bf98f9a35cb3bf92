package command

import (
	"context"
	"fmt"
	"os"

	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/persistence"
	"github.com/ashfall/mudcore/internal/world"
)

// Exit codes for the one-shot CLI surface (spec.md §6: "Exit codes: 0
// success; 1 save/load failure; 2 unknown game").
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUnknownGame = 2
)

func backendFromEnv() *persistence.FileBackend {
	dir := os.Getenv("MUDCORE_DATA_DIR")
	if dir == "" {
		dir = "./data"
	}
	return persistence.NewFileBackend(dir)
}

// Save builds (or loads) gameID's world and writes a full save, creating
// a fresh game the first time it's invoked.
func Save(ctx context.Context, catalogDir, gameID string) int {
	cat := catalog.New()
	if err := cat.Load(ctx, catalogDir); err != nil {
		fmt.Fprintf(os.Stderr, "loading catalog: %s\n", err)
		return ExitFailure
	}

	w := world.New(cat)
	mgr := persistence.NewManager(backendFromEnv(), w, gameID)

	if _, err := mgr.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "loading existing save: %s\n", err)
		return ExitFailure
	}

	if err := mgr.Save(ctx, false); err != nil {
		fmt.Fprintf(os.Stderr, "saving %s: %s\n", gameID, err)
		return ExitFailure
	}

	fmt.Printf("saved %s\n", gameID)
	return ExitSuccess
}

// Load verifies gameID has a save and can be parsed, without running the
// server.
func Load(ctx context.Context, gameID string) int {
	backend := backendFromEnv()
	blob, ok, err := backend.Load(ctx, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %s\n", gameID, err)
		return ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown game %s\n", gameID)
		return ExitUnknownGame
	}
	if len(blob) == 0 {
		fmt.Fprintf(os.Stderr, "save file for %s is empty\n", gameID)
		return ExitFailure
	}

	fmt.Printf("%s loads cleanly (%d bytes)\n", gameID, len(blob))
	return ExitSuccess
}

// List prints every known game id.
func List(ctx context.Context) int {
	backend := backendFromEnv()
	ids, err := backend.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing saves: %s\n", err)
		return ExitFailure
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return ExitSuccess
}

// Backup rotates a backup copy of gameID's current save.
func Backup(ctx context.Context, gameID string) int {
	backend := backendFromEnv()
	_, ok, err := backend.Load(ctx, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "checking %s: %s\n", gameID, err)
		return ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown game %s\n", gameID)
		return ExitUnknownGame
	}

	if err := backend.Backup(ctx, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "backing up %s: %s\n", gameID, err)
		return ExitFailure
	}

	fmt.Printf("backed up %s\n", gameID)
	return ExitSuccess
}
