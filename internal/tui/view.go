package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tablefork/dishboard/internal/tui/keymap"
	"github.com/tablefork/dishboard/internal/tui/styles"
	"github.com/tablefork/dishboard/internal/util"
)

// View renders the header, the active page, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting dishboard..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.activeTab == tabMenu {
		b.WriteString(m.menu.View())
	} else {
		b.WriteString(m.orders.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	title := styles.Title.Render("dishboard")

	tabs := []string{"Menu", "Orders"}
	var rendered []string
	for i, name := range tabs {
		if i == m.activeTab {
			rendered = append(rendered, styles.TabActive.Render(name))
		} else {
			rendered = append(rendered, styles.TabInactive.Render(name))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", strings.Join(rendered, " "))
}

func (m Model) renderHelpBar() string {
	if !m.showHelp {
		return styles.HelpBar.Render("? help · tab switch page · q quit")
	}

	var parts []string
	for _, b := range m.keys.Help(keymap.ModeBrowse) {
		parts = append(parts, styles.HelpKey.Render(b.Key)+" "+styles.Muted.Render(b.Description))
	}

	// The full binding list easily outgrows a narrow terminal; clip the
	// styled line rather than letting it wrap mid-escape-sequence.
	bar := strings.Join(parts, "  ")
	if m.width > 0 {
		bar = util.TruncateANSI(bar, m.width)
	}
	return styles.HelpBar.Render(bar)
}
