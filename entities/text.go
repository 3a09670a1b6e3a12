package entities

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Text is a string field of a showings file that never fails to decode.
// Numbers keep their literal text; null, booleans, objects and arrays read
// as "".
type Text string

func (t Text) String() string {
	return string(t)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*t = Text(raw)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(data)
	default:
		*t = ""
	}
	return nil
}

func (t *Text) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		return t.UnmarshalYAML(value.Alias)
	}
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" || value.Tag == "!!bool" {
		*t = ""
		return nil
	}
	*t = Text(value.Value)
	return nil
}
