package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/convobar/internal/ports"
	"github.com/renato0307/convobar/internal/theme"
)

// SearchBar is the bottom bar in search mode: a query field and the match counter
type SearchBar struct {
	current int
	input   textinput.Model
	matches fuzzy.Matches
}

var _ ports.View = (*SearchBar)(nil)

// NewSearchBar creates an empty search bar
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search messages"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	return &SearchBar{input: ti}
}

func (s *SearchBar) PreferredHeight(int) int {
	return 1
}

func (s *SearchBar) Render(width int) string {
	counter := theme.BarLabelStyle.Render(s.counter())
	s.input.Width = max(width-lipgloss.Width(counter)-lipgloss.Width(s.input.Prompt)-2, 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, s.input.View(), " ", counter)
}

func (s *SearchBar) counter() string {
	if s.input.Value() == "" {
		return ""
	}
	if len(s.matches) == 0 {
		return "no matches"
	}
	return fmt.Sprintf("%d of %d", s.current+1, len(s.matches))
}

// Focus starts editing the query
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur stops editing the query
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Reset clears the query and its matches
func (s *SearchBar) Reset() {
	s.input.Reset()
	s.matches = nil
	s.current = 0
}

// Query returns the current query
func (s *SearchBar) Query() string {
	return s.input.Value()
}

// Update forwards msg to the query field and refreshes the matches against messages
func (s *SearchBar) Update(msg tea.Msg, messages []string) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.Match(messages)
	}
	return cmd
}

// Match recomputes the matches of the current query against messages
func (s *SearchBar) Match(messages []string) {
	s.current = 0
	if s.input.Value() == "" {
		s.matches = nil
		return
	}
	s.matches = fuzzy.Find(s.input.Value(), messages)
}

// Next moves to the next match, wrapping around
func (s *SearchBar) Next() {
	if len(s.matches) > 0 {
		s.current = (s.current + 1) % len(s.matches)
	}
}

// Prev moves to the previous match, wrapping around
func (s *SearchBar) Prev() {
	if len(s.matches) > 0 {
		s.current = (s.current - 1 + len(s.matches)) % len(s.matches)
	}
}

// Current returns the message index of the current match
func (s *SearchBar) Current() (int, bool) {
	if len(s.matches) == 0 {
		return 0, false
	}
	return s.matches[s.current].Index, true
}

// IsMatch reports whether the message at index matched the query
func (s *SearchBar) IsMatch(index int) bool {
	for _, m := range s.matches {
		if m.Index == index {
			return true
		}
	}
	return false
}
