package location

import "github.com/ashfall/mudcore/internal/inventory"

// UnlockMethod names how a container was (or can be) unlocked.
type UnlockMethod string

const (
	MethodNone     UnlockMethod = ""
	MethodKey      UnlockMethod = "key"
	MethodLockpick UnlockMethod = "lockpick"
)

// UnlockOptions is the result of CanUnlock: what the caller could do right
// now, given their inventory (spec.md §4.4).
type UnlockOptions struct {
	CanUnlock       bool
	Methods         []UnlockMethod
	RequiredItems   []string
	RequiredSkills  []string
	Difficulty      *int
}

const lockpickItemID = "lockpick"

// CanUnlock implements spec.md §4.4's can_unlock rules, evaluated in order:
// already unlocked; key in inventory; lockpick in inventory when
// lock_difficulty > 0; otherwise not unlockable with current inventory.
func CanUnlock(c *Container, inv *inventory.Inventory) UnlockOptions {
	if !c.IsLocked {
		return UnlockOptions{CanUnlock: true, Methods: []UnlockMethod{MethodNone}}
	}

	if c.KeyRequired != "" && inv.Has(c.KeyRequired, 1) {
		return UnlockOptions{CanUnlock: true, Methods: []UnlockMethod{MethodKey}}
	}

	if c.LockDifficulty > 0 && inv.Has(lockpickItemID, 1) {
		diff := c.LockDifficulty
		return UnlockOptions{CanUnlock: true, Methods: []UnlockMethod{MethodLockpick}, Difficulty: &diff}
	}

	opts := UnlockOptions{CanUnlock: false}
	if c.KeyRequired != "" {
		opts.RequiredItems = append(opts.RequiredItems, c.KeyRequired)
	}
	if c.LockDifficulty > 0 {
		opts.RequiredSkills = append(opts.RequiredSkills, "lockpicking")
	}
	return opts
}

// UnlockResult reports the outcome of Unlock.
type UnlockResult struct {
	Success bool
	Method  UnlockMethod
	Options UnlockOptions
}

// Unlock consults CanUnlock, applies the first acceptable method, clears
// IsLocked, and reports the method used so the caller can emit
// container_unlocked exactly once (spec.md §4.4, invariant 7). Unlocking
// an already-unlocked container is a trivial success with MethodNone.
func Unlock(c *Container, inv *inventory.Inventory, method string) UnlockResult {
	opts := CanUnlock(c, inv)
	if !opts.CanUnlock {
		return UnlockResult{Success: false, Options: opts}
	}

	if !c.IsLocked {
		return UnlockResult{Success: true, Method: MethodNone, Options: opts}
	}

	chosen := opts.Methods[0]
	if method != "" && method != "auto" {
		for _, m := range opts.Methods {
			if string(m) == method {
				chosen = m
				break
			}
		}
	}

	c.IsLocked = false
	return UnlockResult{Success: true, Method: chosen, Options: opts}
}
