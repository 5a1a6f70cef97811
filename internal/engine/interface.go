// Package engine applies stat modifiers to character stat sheets through a
// registry of named stat operations.
package engine

import "github.com/KirkDiggler/rpg-loot/internal/entities/stats"

// StatApplier applies and reverses stat entries on a sheet
type StatApplier interface {
	// Apply executes entry against sheet. It returns false without touching
	// the sheet when the stat id is unknown.
	Apply(sheet *stats.Sheet, entry stats.Entry, sign Sign) bool

	// ApplyModifier applies every entry of m and returns how many were known.
	// With SignReverse the entries are walked back to front.
	ApplyModifier(sheet *stats.Sheet, m stats.Modifier, sign Sign) int
}

// Sign selects whether an entry is applied or reversed
type Sign int

// Available signs
const (
	SignApply   Sign = 1
	SignReverse Sign = -1
)

// IsValid checks if the sign is one of the two known values
func (s Sign) IsValid() bool {
	return s == SignApply || s == SignReverse
}

// ApplyFunc mutates the sheet for one entry with an already resolved operation
type ApplyFunc func(sheet *stats.Sheet, entry stats.Entry, op stats.Operation, sign Sign)
