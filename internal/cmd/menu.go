package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/tui/styles"
)

var menuFlags struct {
	search      string
	category    string
	available   bool
	unavailable bool
	minPrice    float64
	maxPrice    float64
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List menu items and exit",
	Long: `Fetch the menu catalog once and print it. The same filters the
dashboard offers are available as flags, which makes this suitable
for scripting and quick checks.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVarP(&menuFlags.search, "search", "s", "", "full-text search")
	menuCmd.Flags().StringVar(&menuFlags.category, "category", "", "filter by category (Appetizer, Main Course, Dessert, Beverage)")
	menuCmd.Flags().BoolVar(&menuFlags.available, "available", false, "only available items")
	menuCmd.Flags().BoolVar(&menuFlags.unavailable, "unavailable", false, "only unavailable items")
	menuCmd.Flags().Float64Var(&menuFlags.minPrice, "min-price", 0, "minimum price")
	menuCmd.Flags().Float64Var(&menuFlags.maxPrice, "max-price", 0, "maximum price")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	_, client, log, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	filter := api.MenuFilter{
		Text:     menuFlags.search,
		Category: api.Category(menuFlags.category),
	}
	if menuFlags.available != menuFlags.unavailable {
		v := menuFlags.available
		filter.IsAvailable = &v
	}
	if cmd.Flags().Changed("min-price") {
		filter.MinPrice = &menuFlags.minPrice
	}
	if cmd.Flags().Changed("max-price") {
		filter.MaxPrice = &menuFlags.maxPrice
	}

	items, err := client.ListMenu(context.Background(), filter)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("no menu items match")
		return nil
	}

	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%-28s %-12s %8s %6s  %s", "NAME", "CATEGORY", "PRICE", "PREP", "AVAILABLE"))
	fmt.Println(header)
	for _, item := range items {
		avail := styles.Secondary.Render("yes")
		if !item.IsAvailable {
			avail = styles.Error.Render("no")
		}
		fmt.Printf("%-28s %-12s %8.2f %5dm  %s\n",
			item.Name, item.Category, item.Price, item.PreparationTime, avail)
	}
	return nil
}
