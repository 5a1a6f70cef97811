package catalog

import (
	"fmt"
	"log/slog"
)

// WarningKind classifies a non-fatal catalog problem
type WarningKind string

// Available warning kinds
const (
	WarningEmptyID      WarningKind = "empty_id"
	WarningDuplicateID  WarningKind = "duplicate_id"
	WarningNoStatRolls  WarningKind = "no_stat_rolls"
	WarningUnknownStat  WarningKind = "unknown_stat"
	WarningLegacyFields WarningKind = "legacy_fields"
	WarningBadRange     WarningKind = "bad_level_range"
)

// Warning is a data integrity problem found while loading a catalog. The
// offending record is dropped unless the kind says otherwise; loading goes on.
type Warning struct {
	Kind    WarningKind
	ID      string
	Index   int
	Message string
}

// String returns a readable form of the warning
func (w Warning) String() string {
	return fmt.Sprintf("%s: record %d (%q): %s", w.Kind, w.Index, w.ID, w.Message)
}

func logWarnings(source string, warnings []Warning) {
	for _, w := range warnings {
		slog.Warn("catalog data integrity warning",
			"source", source,
			"kind", string(w.Kind),
			"id", w.ID,
			"index", w.Index,
			"message", w.Message)
	}
}
