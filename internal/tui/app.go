package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/config"
	"github.com/tablefork/dishboard/internal/logging"
	"github.com/tablefork/dishboard/internal/store"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	cfg     *config.Config
	log     *logging.Logger
}

// New creates the TUI application over a fresh shared store.
func New(client *api.Client, cfg *config.Config, log *logging.Logger) *App {
	return &App{
		model: NewModel(client, store.New(), log, cfg),
		cfg:   cfg,
		log:   log,
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	var opts []tea.ProgramOption
	if a.cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Translate termination signals into a clean quit so the terminal
	// is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	a.log.Info("starting dashboard", "base_url", a.cfg.API.BaseURL)
	_, err := a.program.Run()
	return err
}
