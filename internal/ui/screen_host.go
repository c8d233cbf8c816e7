package ui

import (
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
)

// OnKindChanged moves focus to the newly mounted bottom view
func (s *ConversationScreen) OnKindChanged(kind domain.BottomViewKind) {
	logging.Logger.Info("Bottom view changed", "thread", s.threadID, "kind", kind.String())
	s.kind = kind

	if kind.Tag == domain.KindInputToolbar {
		if cmd := s.toolbar.Focus(); cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	} else {
		s.toolbar.Blur()
	}

	if kind.Tag == domain.KindSearch {
		if cmd := s.search.Focus(); cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	} else {
		s.search.Blur()
	}
}

// UpdateContentInsets fits the message viewport above the bottom bar.
// Without animation the conversation jumps to its newest message.
func (s *ConversationScreen) UpdateContentInsets(animated bool) {
	wasAtBottom := s.viewport.AtBottom()

	s.viewport.Height = max(s.height-s.chromeRows(), 0)
	s.refreshContent()

	if !animated || wasAtBottom {
		s.viewport.GotoBottom()
	}
	logging.Logger.Debug("Updated content insets",
		"animated", animated,
		"viewport_height", s.viewport.Height,
		"accessory_height", s.accessory.DesiredHeight(),
		"keyboard_overlap", s.layout.KeyboardOverlap())
}

// UpdateInputVisibility hides or shows the composer per the input visibility policy
func (s *ConversationScreen) UpdateInputVisibility() {
	hide := s.inputVisibility.ShouldHideInput()
	if hide == s.toolbar.IsHidden() {
		return
	}

	logging.Logger.Debug("Input visibility changed", "hidden", hide,
		"preview", s.inputVisibility.IsPreview, "left_group", s.inputVisibility.HasLeftGroup)
	s.toolbar.SetHidden(hide)
	if hide && s.trayOpen {
		// the tray belongs to the composer's input session
		s.setTrayOpen(false)
	}

	if !s.bottomBar.Contains(s.toolbar) {
		return
	}
	if !hide && s.kind.Tag == domain.KindInputToolbar {
		if cmd := s.toolbar.Focus(); cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	}
	// The composer's height changed under the bar
	s.layout.UpdateAccessoryHeight()
	s.UpdateContentInsets(true)
}

func (s *ConversationScreen) chromeRows() int {
	return headerRows + statusRows + helpRows + s.accessory.DesiredHeight() + s.layout.KeyboardOverlap()
}
