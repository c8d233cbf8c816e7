package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/theme"
)

func (s *ConversationScreen) View() string {
	if s.quitting || !s.appeared || s.width == 0 {
		return ""
	}

	sections := []string{
		s.renderHeader(),
		s.viewport.View(),
		s.renderStatus(),
		s.help.View(modeHelp{keys: s.keys, mode: s.mode}),
	}
	if bar := s.renderBar(); bar != "" {
		sections = append(sections, bar)
	}
	if tray := s.renderTray(); tray != "" {
		sections = append(sections, tray)
	}
	screen := strings.Join(sections, "\n")

	if sliding, ok := s.controller.Sliding(); ok {
		panel := sliding.Panel.Render(s.width) + strings.Repeat("\n", s.bottomBar.SafeAreaInset())
		screen = bottomAnchoredOverlay(screen, panel, s.width, s.height, sliding.Visible())
	}

	if s.state == stateConfirmingBlock && s.confirmDialog != nil {
		screen = compositeOverlay(screen, s.confirmDialog.View(), s.width, s.height)
	}

	return screen
}

func (s *ConversationScreen) renderHeader() string {
	name := s.threadID
	if s.thread != nil && s.thread.Name != "" {
		name = s.thread.Name
	}
	header := theme.HeaderStyle.Render(name)
	if s.devMode {
		header += theme.HeaderMetaStyle.Render(fmt.Sprintf("  %s · %s", s.kind, s.mode))
	}
	return lipgloss.NewStyle().MaxWidth(s.width).Render(header)
}

// renderStatus always returns statusRows lines: the error, a notice or blanks
func (s *ConversationScreen) renderStatus() string {
	var text string
	switch {
	case s.errorManager.HasError():
		text = theme.ErrorStyle.Render(formatErrorForDisplay(s.errorManager.GetError(), s.width))
	case s.notice != "":
		text = theme.MutedStyle.Width(s.width).MaxHeight(statusRows).Render(s.notice)
	}
	return lipgloss.NewStyle().Height(statusRows).MaxHeight(statusRows).Render(text)
}

// renderBar draws the bottom bar lifted by its offset above the keyboard
func (s *ConversationScreen) renderBar() string {
	return s.bottomBar.View()
}

func (s *ConversationScreen) renderTray() string {
	rows := -s.bottomBar.BottomOffset()
	if rows <= 0 {
		return ""
	}
	return theme.TrayStyle.
		Width(s.width).
		Height(rows).
		MaxHeight(rows).
		Render("Attachments · drag down to close")
}

// refreshContent re-renders the messages into the viewport
func (s *ConversationScreen) refreshContent() {
	if len(s.messages) == 0 {
		s.viewport.SetContent(theme.MutedStyle.Render(emptyConversation))
		return
	}

	currentMatch, hasMatch := -1, false
	if s.mode == domain.ModeSearch {
		currentMatch, hasMatch = s.search.Current()
	}

	lines := make([]string, len(s.messages))
	for i, m := range s.messages {
		style := theme.OwnMessageStyle
		prefix := "  "
		switch s.mode {
		case domain.ModeSearch:
			if s.search.IsMatch(i) {
				style = theme.SearchMatchStyle
			}
			if hasMatch && i == currentMatch {
				style = style.Reverse(true)
			}
		case domain.ModeSelection:
			if s.selected[i] {
				style = theme.SelectedMessageStyle
				prefix = "● "
			}
			if i == s.cursor {
				style = style.Inherit(theme.CursorMessageStyle)
			}
		}
		lines[i] = prefix + style.Width(max(s.width-2, 1)).Render(m)
	}
	s.viewport.SetContent(strings.Join(lines, "\n"))
}

// scrollTo brings message i into view
func (s *ConversationScreen) scrollTo(i int) {
	if i < s.viewport.YOffset {
		s.viewport.SetYOffset(i)
	} else if i >= s.viewport.YOffset+s.viewport.Height {
		s.viewport.SetYOffset(i - s.viewport.Height + 1)
	}
}
