package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/person-form/internal/present"
	"github.com/ytget/person-form/internal/state"
	"github.com/ytget/person-form/internal/trace"
)

const helpText = "tab/↑/↓ move · space toggle · esc quit"

// App is the parent model. Every key goes to the editor together with the
// current snapshot; Bubble Tea re-renders both children after each Update.
type App struct {
	store  state.Holder
	editor Editor
	view   ReadOnly

	quitting bool
}

// NewApp creates the terminal UI over store
func NewApp(store state.Holder, tracer trace.Tracer) *App {
	return &App{
		store:  store,
		editor: NewEditor(tracer),
		view:   NewReadOnly(tracer),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg, a.store.Person(), a.store.OnPersonChange)
	return a, cmd
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	p := a.store.Person()

	var b strings.Builder
	b.WriteString(titleStyle.Render(present.HeadingParent))
	b.WriteString("\n\n")
	b.WriteString(a.editor.View(p))
	b.WriteString("\n")
	b.WriteString(a.view.View(p))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

// Run starts a Bubble Tea program for app and blocks until it exits
func Run(app *App, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(app, opts...).Run()
	return err
}
