package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/present"
	"github.com/ytget/person-form/internal/state"
	"github.com/ytget/person-form/internal/trace"
)

// RootUI is the parent component: it reads the record from the state holder
// and re-renders both children after every commit.
type RootUI struct {
	window fyne.Window
	store  state.Holder
	tracer trace.Tracer

	editor *EditorView
	view   *ReadOnlyView

	unsubscribe func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, store state.Holder, tracer trace.Tracer) *RootUI {
	if tracer == nil {
		tracer = trace.Nop{}
	}

	ui := &RootUI{
		window: window,
		store:  store,
		tracer: tracer,
		editor: NewEditorView(tracer),
		view:   NewReadOnlyView(tracer),
	}

	ui.setupUI()
	ui.unsubscribe = store.Subscribe(ui.render)
	ui.render(store.Person())

	log.Printf("RootUI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	heading := widget.NewLabelWithStyle(present.HeadingParent, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	content := container.NewVBox(
		heading,
		widget.NewSeparator(),
		container.NewPadded(ui.editor.Container()),
		widget.NewSeparator(),
		container.NewPadded(ui.view.Container()),
	)

	ui.window.SetContent(container.NewPadded(content))
}

// render pushes a snapshot to both children
func (ui *RootUI) render(p model.Person) {
	ui.editor.Render(p, ui.store.OnPersonChange)
	ui.view.Render(p)
}

// Editor returns the editable child
func (ui *RootUI) Editor() *EditorView {
	return ui.editor
}

// View returns the read-only child
func (ui *RootUI) View() *ReadOnlyView {
	return ui.view
}

// Close detaches the UI from the state holder; later commits are not rendered
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
}
