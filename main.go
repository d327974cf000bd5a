package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/person-form/internal/config"
	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/state"
	"github.com/ytget/person-form/internal/trace"
	"github.com/ytget/person-form/internal/tui"
	"github.com/ytget/person-form/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.person-form"
	AppName = "Person Form"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the configured surface and returns the process exit code
func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		// usage was already printed by the flag set
		return 0
	}
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}

	switch cfg.Frontend {
	case config.FrontendTUI:
		if err := runTUI(cfg); err != nil {
			log.Printf("terminal UI failed: %v", err)
			return 1
		}
	default:
		runGUI(cfg)
	}
	return 0
}

func runGUI(cfg config.Config) {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFormTheme())

	settings := config.NewSettings(myApp, cfg.Window)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(settings.GetWindowSize())

	store := state.NewContainer(model.DefaultPerson(), trace.New(cfg.Trace, log.Default()))
	log.Printf("session %s", store.ID())
	root := ui.NewRootUI(myWindow, store, store.Tracer())

	myWindow.SetCloseIntercept(func() {
		settings.SetWindowSize(myWindow.Canvas().Size())
		root.Close()
		myWindow.Close()
	})

	myWindow.ShowAndRun()
}

func runTUI(cfg config.Config) error {
	// stderr belongs to the terminal while the program runs
	tracer := trace.Tracer(trace.Nop{})
	if cfg.Trace && cfg.TUI.LogFile != "" {
		f, err := tea.LogToFile(cfg.TUI.LogFile, "")
		if err != nil {
			return fmt.Errorf("open trace log: %w", err)
		}
		defer f.Close()
		tracer = trace.New(true, log.Default())
	}

	store := state.NewContainer(model.DefaultPerson(), tracer)
	return tui.Run(tui.NewApp(store, store.Tracer()), tea.WithAltScreen())
}
