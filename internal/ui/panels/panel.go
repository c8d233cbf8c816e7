// Package panels builds the request and migration panels that the bottom bar
// constructs fresh for every mount.
package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ports"
	"github.com/renato0307/convobar/internal/theme"
)

// Button is an action a panel offers, bound to a single key
type Button struct {
	Action      domain.PanelAction
	Destructive bool
	Key         string
	Label       string
}

// KeyHandler is implemented by panels that react to key presses
type KeyHandler interface {
	HandleKey(key string) bool
}

// requestPanel is the shared layout of request and migration panels:
// a title, a body and a row of buttons
type requestPanel struct {
	body       string
	buttons    []Button
	delegate   ports.PanelDelegate
	threadID   string
	title      string
	titleStyle lipgloss.Style
}

var (
	_ ports.Panel = (*requestPanel)(nil)
	_ KeyHandler  = (*requestPanel)(nil)
)

// SetDelegate sets the receiver of this panel's actions
func (p *requestPanel) SetDelegate(delegate ports.PanelDelegate) {
	p.delegate = delegate
}

// Title returns the panel headline
func (p *requestPanel) Title() string {
	return p.title
}

// Buttons returns the actions this panel offers, in display order
func (p *requestPanel) Buttons() []Button {
	return p.buttons
}

// HandleKey triggers the button bound to key.
// Returns false when no button matches.
func (p *requestPanel) HandleKey(key string) bool {
	for _, b := range p.buttons {
		if b.Key == key {
			p.trigger(b.Action)
			return true
		}
	}
	return false
}

func (p *requestPanel) trigger(action domain.PanelAction) {
	if p.delegate == nil {
		logging.Logger.Warn("Panel action without delegate", "thread", p.threadID, "action", action)
		return
	}
	logging.Logger.Debug("Panel action triggered", "thread", p.threadID, "action", action)
	p.delegate.HandlePanelAction(p.threadID, action)
}

// Render draws the panel at the given width
func (p *requestPanel) Render(width int) string {
	inner := max(width-theme.PanelStyle.GetHorizontalFrameSize(), 1)

	lines := []string{
		p.titleStyle.Width(inner).Render(p.title),
		theme.PanelBodyStyle.Width(inner).Render(p.body),
		"",
		lipgloss.NewStyle().Width(inner).Render(p.renderButtons()),
	}

	return theme.PanelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PreferredHeight returns the rows Render produces at width
func (p *requestPanel) PreferredHeight(width int) int {
	return lipgloss.Height(p.Render(width))
}

func (p *requestPanel) renderButtons() string {
	rendered := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		style := theme.PanelButtonStyle
		if b.Destructive {
			style = theme.PanelDestructiveButtonStyle
		}
		rendered[i] = style.Render(fmt.Sprintf("%s %s", b.Key, b.Label))
	}
	return strings.Join(rendered, "")
}

func displayName(thread domain.Thread) string {
	if thread.Name != "" {
		return thread.Name
	}
	if thread.IsGroup {
		return "this group"
	}
	return "this person"
}
