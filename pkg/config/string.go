package config

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StringSlice is a list of column names. The config accepts a list, a single
// name or a comma separated string like "rsi_14, atr_14".
type StringSlice []string

func (s *StringSlice) add(names string) {
	for _, name := range strings.Split(names, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*s = append(*s, name)
		}
	}
}

func (s *StringSlice) decode(a interface{}) error {
	switch d := a.(type) {
	case string:
		s.add(d)

	case []string:
		for _, name := range d {
			s.add(name)
		}

	case []interface{}:
		for _, de := range d {
			name, ok := de.(string)
			if !ok {
				return errors.Errorf("column name must be a string, got %T: %+v", de, de)
			}
			s.add(name)
		}

	default:
		return errors.Errorf("unexpected type %T for the column list: %+v", d, d)
	}

	return nil
}

func (s *StringSlice) UnmarshalYAML(value *yaml.Node) error {
	var a interface{}
	if err := value.Decode(&a); err != nil {
		return err
	}
	return s.decode(a)
}

func (s *StringSlice) UnmarshalJSON(b []byte) error {
	var a interface{}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return s.decode(a)
}
