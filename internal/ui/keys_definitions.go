package ui

import (
	"slices"
	"sync"
)

// KeyDefinition describes one configurable key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// keyDefinitions lists every binding settings.json may override.
// Panel buttons carry their own keys and are not listed here.
var keyDefinitions = []KeyDefinition{
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "quit", Defaults: []string{"ctrl+q"}, Help: "close conversation"},
	{Name: "tray", Defaults: []string{"ctrl+t"}, Help: "attachments"},

	{Name: "normal_mode", Defaults: []string{"esc"}, Help: "back"},
	{Name: "search", Defaults: []string{"ctrl+f"}, Help: "search"},
	{Name: "select", Defaults: []string{"ctrl+s"}, Help: "select"},

	{Name: "send", Defaults: []string{"enter"}, Help: "send"},

	{Name: "delete_selected", Defaults: []string{"ctrl+d"}, Help: "delete selected"},
	{Name: "down", Defaults: []string{"down"}, Help: "next message"},
	{Name: "toggle_selected", Defaults: []string{" "}, Help: "toggle selection"},
	{Name: "up", Defaults: []string{"up"}, Help: "previous message"},
}

type keyIndex struct {
	byName   map[string]KeyDefinition
	defaults map[string][]string
	names    []string
}

var loadKeyIndex = sync.OnceValue(func() keyIndex {
	idx := keyIndex{
		byName:   make(map[string]KeyDefinition, len(keyDefinitions)),
		defaults: make(map[string][]string, len(keyDefinitions)),
		names:    make([]string, 0, len(keyDefinitions)),
	}
	for _, def := range keyDefinitions {
		idx.byName[def.Name] = def
		idx.defaults[def.Name] = def.Defaults
		idx.names = append(idx.names, def.Name)
	}
	slices.Sort(idx.names)
	return idx
})

// GetDefaultKeyBindings maps each binding name to its default keys
func GetDefaultKeyBindings() map[string][]string {
	return loadKeyIndex().defaults
}

// GetKeyDefinition returns the definition for a binding name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	if def, ok := loadKeyIndex().byName[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all binding names, sorted
func GetValidKeyNames() []string {
	return loadKeyIndex().names
}
