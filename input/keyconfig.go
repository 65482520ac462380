package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that can't be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyConfig is the YAML keymap document
//
//	keys:
//	  Left: left
//	  Ctrl-C: quit
//	runes:
//	  space: attack
//	  x: none
type keyConfig struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// specialKeys maps tcell key names to keys, case-insensitively
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only sections present in the document are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var cfg keyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if cfg.Keys != nil {
		kt.Keys = make(map[tcell.Key]Action, len(cfg.Keys))
		for name, actionName := range cfg.Keys {
			key, ok := specialKeys[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("keys: unknown key %q", name)
			}
			action, err := resolveAction("keys", name, actionName)
			if err != nil {
				return nil, err
			}
			kt.Keys[key] = action
		}
	}
	if cfg.Runes != nil {
		kt.Runes = make(map[rune]Action, len(cfg.Runes))
		for name, actionName := range cfg.Runes {
			r, err := parseRune(name)
			if err != nil {
				return nil, err
			}
			action, err := resolveAction("runes", name, actionName)
			if err != nil {
				return nil, err
			}
			kt.Runes[r] = action
		}
	}
	return kt, nil
}

func resolveAction(section, key, name string) (Action, error) {
	action, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%s: key %q: unknown action %q", section, key, name)
	}
	return action, nil
}

func parseRune(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("runes: %q is not a single character", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}
