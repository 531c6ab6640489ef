package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tablefork/dishboard/internal/tui"
	"golang.org/x/term"
)

// minUsableWidth is the narrowest terminal the dashboard lays out
// sensibly in.
const minUsableWidth = 60

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the interactive dashboard",
	Long: `Launch the full-screen dashboard with the Menu and Orders tabs.
Requires a terminal; use "dishboard menu" or "dishboard orders" for
one-shot listings in scripts.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, client, log, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard needs a terminal; try \"dishboard menu\" for plain output")
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width < minUsableWidth {
		return fmt.Errorf("terminal is %d columns wide, need at least %d", width, minUsableWidth)
	}

	app := tui.New(client, cfg, log)
	if err := app.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
