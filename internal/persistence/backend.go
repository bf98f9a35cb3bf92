// Package persistence implements the World-State Persistence Manager
// (spec.md §4.8, component H): pluggable save/load backend, dirty-flag
// tracking, partial/full save semantics, and auto-save/backup timers.
package persistence

import "context"

// Backend is the pluggable persistence surface spec.md §4.8 names:
// save/load/delete/list/backup over opaque blobs keyed by game id.
type Backend interface {
	Save(ctx context.Context, gameID string, blob []byte) error
	Load(ctx context.Context, gameID string) ([]byte, bool, error)
	Delete(ctx context.Context, gameID string) error
	List(ctx context.Context) ([]string, error)
	Backup(ctx context.Context, gameID string) error
}
