package config

import (
	"encoding/json"
	"fmt"
	"sort"
)

// KeyBindingValue is one or more key sequences. In JSON it is either
// "ctrl+f" or ["/", "ctrl+f"].
type KeyBindingValue []string

func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	keys, err := decodeList(data, func(s string) []string {
		if s == "" {
			return nil
		}
		return []string{s}
	})
	if err != nil {
		return err
	}
	*kv = keys
	return nil
}

func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig maps a binding name ("search", "tray", ...) to the keys
// that replace its defaults
type KeyBindingsConfig map[string]KeyBindingValue

// Validate rejects unknown binding names, empty keys and keys bound to two
// names. validNames comes from ui.GetValidKeyNames.
func (k KeyBindingsConfig) Validate(validNames []string) error {
	known := make(map[string]struct{}, len(validNames))
	for _, name := range validNames {
		known[name] = struct{}{}
	}

	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	owner := make(map[string]string)
	for _, name := range names {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if prev, taken := owner[key]; taken {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, prev, name)
			}
			owner[key] = name
		}
	}
	return nil
}

// decodeList accepts a JSON array of strings, or a single string that
// fromString turns into a list
func decodeList(data []byte, fromString func(string) []string) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return fromString(s), nil
}
