package stats

import "encoding/json"

// modifierDoc is the wire shape of a Modifier: {"entries": [...]}.
type modifierDoc struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// MarshalJSON implements json.Marshaler
func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(modifierDoc{Entries: m.entries})
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Modifier) UnmarshalJSON(data []byte) error {
	var doc modifierDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*m = NewModifier(doc.Entries...)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (m Modifier) MarshalYAML() (any, error) {
	return modifierDoc{Entries: m.entries}, nil
}
