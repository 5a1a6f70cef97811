package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Format is the encoding of a catalog document
type Format int

// Supported formats
const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a document of the given format into out. Unknown JSON fields
// are rejected so that misspelled keys abort the load instead of silently
// producing empty records.
func Decode(r io.Reader, format Format, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read catalog")
	}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && err != io.EOF {
			return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse YAML catalog")
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse JSON catalog")
		}
	}
	return nil
}

// Encode writes v in the given format
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode JSON")
		}
		return nil
	}
}

// DecodeFile opens path and decodes it using the format implied by its extension
func DecodeFile(path string, out any) error {
	f, err := os.Open(path) // #nosec G304 -- catalog paths come from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("catalog file %s not found", path)
		}
		return errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	if err := Decode(f, FormatFromPath(path), out); err != nil {
		return errors.Wrapf(err, "catalog %s", path)
	}
	return nil
}

// LoadEquipmentFile loads an equipment catalog from disk
func LoadEquipmentFile(path string, opts *Options) (*EquipmentCatalog, []Warning, error) {
	var doc EquipmentFile
	if err := DecodeFile(path, &doc); err != nil {
		return nil, nil, err
	}
	cat, warnings, err := LoadEquipment(doc.Items, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "catalog %s", path)
	}
	logWarnings(path, warnings)
	return cat, warnings, nil
}

// LoadAffixFile loads an affix catalog from disk
func LoadAffixFile(path string, opts *Options) (*AffixCatalog, []Warning, error) {
	var doc AffixFile
	if err := DecodeFile(path, &doc); err != nil {
		return nil, nil, err
	}
	cat, warnings, err := LoadAffixes(doc.Affixes, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "catalog %s", path)
	}
	logWarnings(path, warnings)
	return cat, warnings, nil
}

// LoadRarityFile reads a rarity table override from disk
func LoadRarityFile(path string) (*RarityTable, error) {
	var doc RarityFile
	if err := DecodeFile(path, &doc); err != nil {
		return nil, err
	}
	table, err := NewRarityTable(doc.Rarities)
	if err != nil {
		return nil, errors.Wrapf(err, "rarity table %s", path)
	}
	return table, nil
}
