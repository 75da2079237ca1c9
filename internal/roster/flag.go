package roster

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Flag is a boolean that also accepts the integers 0 and 1.
type Flag bool

// UnmarshalYAML accepts !!bool and the !!int values 0 and 1.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*f = Flag(b)
		return nil
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		return f.setInt(n)
	}
	return fmt.Errorf("line %d: flag must be a boolean or 0/1, got %q", node.Line, node.Value)
}

// UnmarshalJSON accepts true, false, 0 and 1.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag must be a boolean or 0/1, got %s", data)
	}
	return f.setInt(n)
}

func (f *Flag) setInt(n int) error {
	switch n {
	case 0:
		*f = false
	case 1:
		*f = true
	default:
		return fmt.Errorf("flag must be a boolean or 0/1, got %d", n)
	}
	return nil
}
