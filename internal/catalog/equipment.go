package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Options tunes catalog loading
type Options struct {
	// KnownStat reports whether a stat id is registered. When set, entries and
	// stat rolls naming an unknown stat produce a WarningUnknownStat; the
	// record is still kept.
	KnownStat func(statID string) bool
}

func (o *Options) knownStat(statID string) bool {
	if o == nil || o.KnownStat == nil {
		return true
	}
	return o.KnownStat(statID)
}

// EquipmentCatalog is the read-only set of equipment templates
type EquipmentCatalog struct {
	templates []*equipment.Template
	byID      map[string]*equipment.Template
}

// NewEquipmentCatalog builds a catalog from templates. Empty and duplicate ids
// are dropped with a warning; the first occurrence of an id wins.
func NewEquipmentCatalog(templates ...*equipment.Template) (*EquipmentCatalog, []Warning) {
	c := &EquipmentCatalog{byID: make(map[string]*equipment.Template, len(templates))}
	var warnings []Warning
	for i, t := range templates {
		if t == nil {
			continue
		}
		if w, ok := c.add(i, t); !ok {
			warnings = append(warnings, w)
		}
	}
	return c, warnings
}

func (c *EquipmentCatalog) add(index int, t *equipment.Template) (Warning, bool) {
	if strings.TrimSpace(t.ID) == "" {
		return Warning{Kind: WarningEmptyID, Index: index, Message: "equipment record has an empty id"}, false
	}
	if _, exists := c.byID[t.ID]; exists {
		return Warning{Kind: WarningDuplicateID, ID: t.ID, Index: index, Message: "duplicate equipment id, entry skipped"}, false
	}
	c.byID[t.ID] = t
	c.templates = append(c.templates, t)
	return Warning{}, true
}

// LoadEquipment converts records into a catalog. A record with an unknown
// slot aborts the load; id problems only produce warnings.
func LoadEquipment(records []EquipmentRecord, opts *Options) (*EquipmentCatalog, []Warning, error) {
	c := &EquipmentCatalog{byID: make(map[string]*equipment.Template, len(records))}
	var warnings []Warning

	for i, rec := range records {
		migrated, changed := migrateRecord(rec)
		if changed {
			warnings = append(warnings, Warning{
				Kind: WarningLegacyFields, ID: rec.ID, Index: i,
				Message: "legacy modifier schema migrated to entries",
			})
		}

		tmpl, err := templateFromRecord(migrated)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "equipment record %d (%q)", i, rec.ID)
		}

		w, ok := c.add(i, tmpl)
		if !ok {
			warnings = append(warnings, w)
			continue
		}
		for _, e := range migrated.BaseModifier.Entries {
			if !opts.knownStat(e.StatID) {
				warnings = append(warnings, Warning{
					Kind: WarningUnknownStat, ID: rec.ID, Index: i,
					Message: fmt.Sprintf("base modifier references unknown stat %q", e.StatID),
				})
			}
		}
	}
	return c, warnings, nil
}

func templateFromRecord(rec EquipmentRecord) (*equipment.Template, error) {
	slot, ok := equipment.SlotFromString(rec.Slot)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown equipment slot %q", rec.Slot).WithMeta("slot", rec.Slot)
	}
	for _, e := range rec.BaseModifier.Entries {
		if !e.Operation.IsValid() {
			return nil, errors.InvalidArgumentf("invalid operation for stat %q", e.StatID)
		}
	}
	return &equipment.Template{
		ID:               strings.TrimSpace(rec.ID),
		DisplayName:      rec.DisplayName,
		Description:      rec.Description,
		IconResourcePath: rec.IconResourcePath,
		Slot:             slot,
		Tags:             append([]string(nil), rec.Tags...),
		BaseModifier:     stats.NewModifier(rec.BaseModifier.Entries...),
	}, nil
}

// Get returns the template with the given id
func (c *EquipmentCatalog) Get(id string) (*equipment.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// All returns the templates in load order
func (c *EquipmentCatalog) All() []*equipment.Template {
	return append([]*equipment.Template(nil), c.templates...)
}

// Len returns the number of templates
func (c *EquipmentCatalog) Len() int {
	return len(c.templates)
}
