package orderspage

import (
	"fmt"
	"strings"

	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/tui/styles"
	"github.com/tablefork/dishboard/internal/util"
)

// View renders the orders page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	if m.mode == modeConfirmDelete {
		b.WriteString(m.renderConfirm())
	} else {
		b.WriteString(m.renderList())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
	}

	return b.String()
}

func (m Model) renderFilterBar() string {
	filter := "all statuses"
	if m.statusFilter != "" {
		filter = string(m.statusFilter)
	}

	bar := styles.Muted.Render("showing: ") + styles.Text.Render(filter)
	if m.state == stateLoading {
		bar += "  " + m.spin.View()
	}
	return bar
}

func (m Model) renderList() string {
	if len(m.orders) == 0 {
		if m.state == stateLoading {
			return styles.Muted.Render("Loading orders...")
		}
		return styles.Muted.Render("No orders match the current filter.")
	}

	var rows []string
	for i, order := range m.orders {
		rows = append(rows, m.renderRow(i, order))
		if m.expanded == order.ID {
			rows = append(rows, m.renderDetail(order))
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(i int, order api.Order) string {
	marker := "  "
	if i == m.cursor {
		marker = styles.Primary.Render("> ")
	}

	line := fmt.Sprintf("%-10s %-20s table %-3d %8.2f  ",
		order.OrderNumber, util.TruncateString(order.CustomerName, 20), order.TableNumber, order.TotalAmount)

	style := styles.RowNormal
	if i == m.cursor {
		style = styles.RowSelected
	}

	return marker + style.Render(line) + styles.RenderStatusBadge(string(order.Status))
}

func (m Model) renderDetail(order api.Order) string {
	var b strings.Builder
	for _, line := range order.Items {
		b.WriteString(fmt.Sprintf("    %dx %-28s %8.2f\n",
			line.Quantity, util.TruncateString(m.displayName(line), 28), line.Total()))
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("    total %.2f", order.TotalAmount)))
	return b.String()
}

func (m Model) renderConfirm() string {
	label := m.confirmID
	for _, order := range m.orders {
		if order.ID == m.confirmID && order.OrderNumber != "" {
			label = order.OrderNumber
		}
	}

	body := styles.Error.Render("Delete order "+label+"?") + "\n\n" +
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
