package bottombar

import (
	"strings"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/ports"
)

// fakeView is a fixed-height view used in place of the toolbar, search and selection bars
type fakeView struct {
	height int
	name   string
}

func (v *fakeView) PreferredHeight(int) int { return v.height }

func (v *fakeView) Render(int) string {
	return strings.TrimSuffix(strings.Repeat(v.name+"\n", v.height), "\n")
}

// fakePanel is a constructed panel that records its delegate
type fakePanel struct {
	fakeView
	delegate ports.PanelDelegate
}

func (p *fakePanel) SetDelegate(delegate ports.PanelDelegate) { p.delegate = delegate }

func newFakePanel(name string, height int) *fakePanel {
	return &fakePanel{fakeView: fakeView{height: height, name: name}}
}

type nopDelegate struct{}

func (nopDelegate) HandlePanelAction(string, domain.PanelAction) {}
