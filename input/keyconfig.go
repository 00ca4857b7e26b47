package input

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// actionNames are the values accepted in key bindings. "none" unbinds a key
var actionNames = map[string]IntentType{
	"none":         IntentNone,
	"press":        IntentPress,
	"quit":         IntentQuit,
	"mute_effects": IntentToggleEffectMute,
	"mute_music":   IntentToggleMusicMute,
}

// specialKeys indexes tcell key names case-insensitively, e.g. "enter", "ctrl-s", "f1"
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyBindings parses key name → action name bindings into a sparse override KeyTable.
// Single characters and aliases bind runes; anything else must be a tcell key name
func LoadKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}

	for keyStr, actionName := range bindings {
		intent, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = intent
			continue
		}

		k, ok := specialKeys[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.SpecialKeys[k] = intent
	}

	return kt, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := actionNames[name]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override.
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := &KeyTable{
		SpecialKeys: maps.Clone(base.SpecialKeys),
		Runes:       maps.Clone(base.Runes),
	}
	if result.SpecialKeys == nil {
		result.SpecialKeys = make(map[tcell.Key]IntentType)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]IntentType)
	}

	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
