package persistence

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// checksum hashes the serialized body sections of wsf (excluding the
// metadata block itself, which carries the checksum) so Load can detect a
// truncated or hand-edited save file. It never gates Save: a bad checksum
// on load is logged, not fatal, since the JSON still decoded successfully.
func checksum(wsf WorldStateFile) string {
	raw, err := json.Marshal(struct {
		Locations   any `json:"locations"`
		Containers  any `json:"containers"`
		Player      any `json:"player"`
		GlobalState any `json:"global_state"`
	}{wsf.Locations, wsf.Containers, wsf.Player, wsf.GlobalState})
	if err != nil {
		return ""
	}

	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// verifyChecksum recomputes the checksum over the decoded body and compares
// it against the value stored in the file's metadata.
func verifyChecksum(file OnDiskFile) error {
	want := file.WorldState.Metadata.Checksum
	if want == "" {
		return nil
	}
	got := checksum(file.WorldState)
	if got != want {
		return fmt.Errorf("checksum mismatch: file has %s, recomputed %s", want, got)
	}
	return nil
}
