// Package stats holds the stat entry, modifier and character stat sheet types.
package stats

import (
	"fmt"
	"strings"
)

// Operation selects how an entry's value combines with its target stat
type Operation int

// Available operations
const (
	// OperationDefault defers to the operation registered for the stat id.
	OperationDefault Operation = iota
	OperationAdd
	OperationMultiply
)

// String returns the string representation of the operation
func (o Operation) String() string {
	switch o {
	case OperationDefault:
		return "default"
	case OperationAdd:
		return "add"
	case OperationMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// IsValid checks if the operation is one of the known values
func (o Operation) IsValid() bool {
	return o >= OperationDefault && o <= OperationMultiply
}

// ParseOperation converts a case-insensitive name to an Operation.
// An empty string is OperationDefault.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return OperationDefault, nil
	case "add":
		return OperationAdd, nil
	case "multiply", "mul":
		return OperationMultiply, nil
	default:
		return OperationDefault, fmt.Errorf("unknown stat operation %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Operation) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("invalid stat operation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// Entry is a single stat contribution. Entries are values; they are never
// mutated after creation.
type Entry struct {
	StatID    string    `json:"statId" yaml:"statId"`
	Value     float64   `json:"value" yaml:"value"`
	Operation Operation `json:"operation" yaml:"operation"`
	// Text carries the payload for non-numeric stats such as allowed skill tags.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// NewEntry creates an entry with the given operation
func NewEntry(statID string, value float64, op Operation) Entry {
	return Entry{StatID: statID, Value: value, Operation: op}
}

// Modifier is an ordered list of entries. Duplicate stat ids are legal; each
// entry is applied and reversed on its own.
type Modifier struct {
	entries []Entry
}

// NewModifier creates a modifier holding a copy of the given entries
func NewModifier(entries ...Entry) Modifier {
	m := Modifier{}
	if len(entries) > 0 {
		m.entries = append(make([]Entry, 0, len(entries)), entries...)
	}
	return m
}

// Entries returns a copy of the entries in application order
func (m Modifier) Entries() []Entry {
	if len(m.entries) == 0 {
		return nil
	}
	return append(make([]Entry, 0, len(m.entries)), m.entries...)
}

// Len returns the number of entries
func (m Modifier) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the modifier has no entries
func (m Modifier) IsEmpty() bool {
	return len(m.entries) == 0
}

// Clone returns a deep copy
func (m Modifier) Clone() Modifier {
	return NewModifier(m.entries...)
}

// AddEntry appends one entry
func (m *Modifier) AddEntry(statID string, value float64, op Operation) {
	m.entries = append(m.entries, NewEntry(statID, value, op))
}

// Append appends already-built entries
func (m *Modifier) Append(entries ...Entry) {
	m.entries = append(m.entries, entries...)
}

// AddEntriesFrom concatenates other's entries without merging duplicates
func (m *Modifier) AddEntriesFrom(other Modifier) {
	if len(other.entries) == 0 {
		return
	}
	m.entries = append(m.entries, other.entries...)
}

// Sum returns the total of all Add-or-Default entry values for a stat id.
// Multiply entries are ignored. Intended for display and tests.
func (m Modifier) Sum(statID string) float64 {
	total := 0.0
	for _, e := range m.entries {
		if e.StatID == statID && e.Operation != OperationMultiply {
			total += e.Value
		}
	}
	return total
}
