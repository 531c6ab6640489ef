package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/tui/styles"
)

var ordersStatus string

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders and exit",
	Args:  cobra.NoArgs,
	RunE:  runOrders,
}

func init() {
	ordersCmd.Flags().StringVarP(&ordersStatus, "status", "s", "", "filter by status (Pending, Preparing, Ready, Delivered, Cancelled)")
	rootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	_, client, log, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	orders, err := client.ListOrders(context.Background(), api.OrderFilter{Status: api.Status(ordersStatus)})
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		fmt.Println("no orders match")
		return nil
	}

	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%-10s %-20s %-6s %8s  %s", "ORDER", "CUSTOMER", "TABLE", "TOTAL", "STATUS"))
	fmt.Println(header)
	for _, order := range orders {
		fmt.Printf("%-10s %-20s %-6d %8.2f  %s\n",
			order.OrderNumber, order.CustomerName, order.TableNumber, order.TotalAmount,
			styles.RenderStatusBadge(string(order.Status)))
	}
	return nil
}
