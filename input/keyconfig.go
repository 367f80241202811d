package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// LoadKeyConfig builds a sparse override KeyTable from config bindings of
// action name to key names, e.g. {"forward": ["up", "w", "i"]}
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for name, keys := range bindings {
		action, ok := ActionByName(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		for _, key := range keys {
			if err := kt.bind(key, action); err != nil {
				return nil, fmt.Errorf("keymap: action %q: %w", name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(key string, action Action) error {
	lower := strings.ToLower(key)
	if k, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[k] = action
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = action
		return nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		kt.Runes[r] = action
		return nil
	}
	return fmt.Errorf("invalid key name %q", key)
}
