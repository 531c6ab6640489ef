package menupage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/tui/styles"
	"github.com/tablefork/dishboard/internal/util"
)

// View renders the menu page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.renderForm())
	case modeQuickOrder:
		b.WriteString(m.renderQuickOrder())
	case modeConfirmDelete:
		b.WriteString(m.renderConfirm())
	default:
		b.WriteString(m.renderList())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
	}

	return b.String()
}

func (m Model) renderFilterBar() string {
	parts := []string{}

	search := m.search.View()
	if m.mode == modeSearch {
		search = styles.Primary.Render("/ ") + search
	} else if m.search.Value() != "" {
		search = styles.Muted.Render("/ ") + search
	} else {
		search = styles.Muted.Render("/ search")
	}
	parts = append(parts, search)

	cat := "all categories"
	if m.category != "" {
		cat = string(m.category)
	}
	parts = append(parts, styles.Muted.Render("category: ")+styles.Text.Render(cat))

	avail := "all"
	switch {
	case m.avail != nil && *m.avail:
		avail = "available"
	case m.avail != nil:
		avail = "unavailable"
	}
	parts = append(parts, styles.Muted.Render("showing: ")+styles.Text.Render(avail))

	if m.mode == modePrice {
		parts = append(parts, styles.Primary.Render("price: ")+m.price.View())
	} else if m.minPrice != nil || m.maxPrice != nil {
		parts = append(parts, styles.Muted.Render("price: ")+styles.Text.Render(priceRangeLabel(m.minPrice, m.maxPrice)))
	}

	if m.state == stateLoading {
		parts = append(parts, m.spin.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

func priceRangeLabel(minP, maxP *float64) string {
	switch {
	case minP != nil && maxP != nil:
		return fmt.Sprintf("%.2f-%.2f", *minP, *maxP)
	case minP != nil:
		return fmt.Sprintf("from %.2f", *minP)
	default:
		return fmt.Sprintf("up to %.2f", *maxP)
	}
}

func (m Model) renderList() string {
	if len(m.items) == 0 {
		if m.state == stateLoading {
			return styles.Muted.Render("Loading menu...")
		}
		return styles.Muted.Render("No menu items match the current filters.")
	}

	var rows []string
	for i, item := range m.items {
		rows = append(rows, m.renderRow(i, item))
		if i == m.cursor {
			rows = append(rows, m.renderItemDetail(item))
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderItemDetail(item api.MenuItem) string {
	var lines []string
	if item.Description != "" {
		lines = append(lines, "    "+styles.Muted.Render(item.Description))
	}
	if len(item.Ingredients) > 0 {
		lines = append(lines, "    "+styles.Muted.Render(joinIngredients(item.Ingredients)))
	}
	image := item.ImageURL
	if image == "" {
		image = m.placeholder
	}
	lines = append(lines, "    "+styles.Muted.Render(image))
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, item api.MenuItem) string {
	marker := "  "
	if i == m.cursor {
		marker = styles.Primary.Render("> ")
	}

	name := util.TruncateString(item.Name, 28)
	line := fmt.Sprintf("%-28s %-12s %8.2f  %3dm", name, item.Category, item.Price, item.PreparationTime)

	style := styles.RowNormal
	if !item.IsAvailable {
		style = styles.RowUnavailable
	}
	if i == m.cursor {
		style = styles.RowSelected
	}

	return marker + style.Render(line)
}

func (m Model) renderForm() string {
	labels := []string{"Name", "Description", "Price", "Ingredients", "Prep time (min)", "Image URL"}

	title := "New Menu Item"
	if m.form.editingID != "" {
		title = "Edit Menu Item"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	for i, label := range labels {
		style := styles.FormLabel
		if i == m.form.focus {
			style = styles.FormLabelFocused
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(styles.FormLabel.Render("Category"))
	b.WriteString(styles.Text.Render(string(m.form.category)))
	b.WriteString(styles.Muted.Render("  (ctrl+t cycles)"))
	b.WriteString("\n")

	b.WriteString(styles.FormLabel.Render("Available"))
	if m.form.available {
		b.WriteString(styles.Secondary.Render("yes"))
	} else {
		b.WriteString(styles.Error.Render("no"))
	}
	b.WriteString(styles.Muted.Render("  (ctrl+a flips)"))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpBar.Render("enter save · esc cancel · tab next field"))

	return styles.ModalBox.Render(b.String())
}

func (m Model) renderQuickOrder() string {
	labels := []string{"Customer", "Table", "Quantity"}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Quick Order: " + m.quick.item.Name))
	b.WriteString("\n")

	for i, label := range labels {
		style := styles.FormLabel
		if i == m.quick.focus {
			style = styles.FormLabelFocused
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.quick.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(styles.FormLabel.Render("Total"))
	b.WriteString(styles.Secondary.Render(fmt.Sprintf("%.2f", m.quick.total())))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpBar.Render("enter place order · esc cancel"))

	return styles.ModalBox.Render(b.String())
}

func (m Model) renderConfirm() string {
	name := m.confirmID
	for _, item := range m.items {
		if item.ID == m.confirmID {
			name = item.Name
		}
	}

	body := styles.Error.Render("Delete "+name+"?") + "\n\n" +
		styles.HelpBar.Render("y delete · n keep")
	return styles.ModalBox.Render(body)
}

func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusError:
		return styles.StatusError.Render(m.status)
	case statusSuccess:
		return styles.StatusSuccess.Render(m.status)
	default:
		return styles.StatusInfo.Render(m.status)
	}
}
