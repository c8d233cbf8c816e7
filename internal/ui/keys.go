package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/domain"
)

// KeyMap contains all keyboard shortcuts of the conversation screen
type KeyMap struct {
	DeleteSelected key.Binding
	Down           key.Binding
	ForceQuit      key.Binding
	NormalMode     key.Binding
	Quit           key.Binding
	Search         key.Binding
	Select         key.Binding
	Send           key.Binding
	ToggleSelected key.Binding
	Tray           key.Binding
	Up             key.Binding
}

// NewKeyMap creates a KeyMap, applying custom bindings over the defaults
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		DeleteSelected: buildBinding("delete_selected", defaults, customKeys),
		Down:           buildBinding("down", defaults, customKeys),
		ForceQuit:      buildBinding("force_quit", defaults, customKeys),
		NormalMode:     buildBinding("normal_mode", defaults, customKeys),
		Quit:           buildBinding("quit", defaults, customKeys),
		Search:         buildBinding("search", defaults, customKeys),
		Select:         buildBinding("select", defaults, customKeys),
		Send:           buildBinding("send", defaults, customKeys),
		ToggleSelected: buildBinding("toggle_selected", defaults, customKeys),
		Tray:           buildBinding("tray", defaults, customKeys),
		Up:             buildBinding("up", defaults, customKeys),
	}
}

// buildBinding creates a binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	helpKeys := strings.Join(keys, "/")
	if helpKeys == " " {
		helpKeys = "space"
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys, def.Help),
	)
}

// modeHelp adapts the key map to bubbles/help for one UI mode
type modeHelp struct {
	keys KeyMap
	mode domain.UIMode
}

func (h modeHelp) ShortHelp() []key.Binding {
	switch h.mode {
	case domain.ModeSearch:
		return []key.Binding{h.keys.NormalMode, h.keys.Up, h.keys.Down}
	case domain.ModeSelection:
		return []key.Binding{h.keys.ToggleSelected, h.keys.DeleteSelected, h.keys.NormalMode}
	default:
		return []key.Binding{h.keys.Send, h.keys.Search, h.keys.Select, h.keys.Tray, h.keys.Quit}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
