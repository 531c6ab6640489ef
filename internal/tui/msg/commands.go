package msg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tablefork/dishboard/internal/api"
)

// FetchMenu returns a command that lists the catalog with the given
// filter. The caller's current generation token rides along so the
// consumer can tell a fresh response from a superseded one.
func FetchMenu(client *api.Client, filter api.MenuFilter, gen int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.ListMenu(context.Background(), filter)
		return MenuFetchedMsg{Gen: gen, Items: items, Err: err}
	}
}

// SaveItem returns a command that creates the item when id is empty and
// updates it otherwise.
func SaveItem(client *api.Client, id string, payload api.MenuItemPayload) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			item, err := client.CreateMenuItem(context.Background(), payload)
			return ItemSavedMsg{Item: item, Created: true, Err: err}
		}
		item, err := client.UpdateMenuItem(context.Background(), id, payload)
		return ItemSavedMsg{Item: item, Err: err}
	}
}

// DeleteItem returns a command that deletes a menu item.
func DeleteItem(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return ItemDeletedMsg{ID: id, Err: client.DeleteMenuItem(context.Background(), id)}
	}
}

// ToggleAvailability returns a command that flips an item's
// availability on the server.
func ToggleAvailability(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return AvailabilityToggledMsg{ID: id, Err: client.ToggleMenuAvailability(context.Background(), id)}
	}
}

// PlaceOrder returns a command that submits a quick order.
func PlaceOrder(client *api.Client, req api.CreateOrderRequest) tea.Cmd {
	return func() tea.Msg {
		order, err := client.CreateOrder(context.Background(), req)
		return OrderPlacedMsg{Order: order, Err: err}
	}
}

// FetchOrders returns a command that lists orders with the given
// filter, tagged with the caller's generation token.
func FetchOrders(client *api.Client, filter api.OrderFilter, gen int) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.ListOrders(context.Background(), filter)
		return OrdersFetchedMsg{Gen: gen, Orders: orders, Err: err}
	}
}

// UpdateStatus returns a command that moves an order to a new status.
func UpdateStatus(client *api.Client, id string, status api.Status) tea.Cmd {
	return func() tea.Msg {
		return StatusUpdatedMsg{
			ID:     id,
			Status: status,
			Err:    client.UpdateOrderStatus(context.Background(), id, status),
		}
	}
}

// DeleteOrder returns a command that deletes an order.
func DeleteOrder(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return OrderDeletedMsg{ID: id, Err: client.DeleteOrder(context.Background(), id)}
	}
}
