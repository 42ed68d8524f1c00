package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"wemtool/internal/adapters/tui/views"
	"wemtool/internal/logging"
	"wemtool/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewForm
	ViewRun
	ViewLookup
	ViewHelp
)

// Options configure the app
type Options struct {
	ConfigPath string
	IndexPath  string
}

// App is the main TUI application model
type App struct {
	services Services
	sink     *logging.Sink
	editor   ports.EditorOpener

	state  ViewState
	menu   *views.MenuModel
	form   *views.FormModel
	run    *views.RunModel
	lookup *views.LookupModel
	help   *views.HelpModel

	cancel context.CancelFunc

	width  int
	height int
}

// NewApp creates a new TUI application. Log records written to sink while an
// operation runs are shown in the run view.
func NewApp(services Services, sink *logging.Sink, ed ports.EditorOpener, opts Options) *App {
	return &App{
		services: services,
		sink:     sink,
		editor:   ed,
		state:    ViewMenu,
		menu:     views.NewMenuModel(services.MappingPath),
		form:     views.NewFormModel(),
		run:      views.NewRunModel(),
		lookup:   views.NewLookupModel(services.Index),
		help:     views.NewHelpModel(opts.ConfigPath, services.MappingPath, opts.IndexPath),
	}
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.waitForLog()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.run.SetSize(msg.Width, msg.Height)
		a.lookup.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && !a.run.Running() {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToMenuMsg:
		a.state = ViewMenu
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SelectOperationMsg:
		switch {
		case msg.Op == views.OpLookup:
			a.state = ViewLookup
			a.lookup.Reset()
			return a, a.lookup.Init()
		case len(msg.Op.Fields()) == 0:
			return a, a.start(msg.Op, nil)
		default:
			a.state = ViewForm
			a.form.SetOperation(msg.Op)
			return a, a.form.Init()
		}

	// Run messages
	case views.StartRunMsg:
		return a, a.start(msg.Op, msg.Values)

	case views.CancelRunMsg:
		if a.cancel != nil {
			a.cancel()
		}
		return a, nil

	case views.RunFinishedMsg:
		a.cancel = nil
		// Lines logged just before the run returned may not have been pumped yet
		a.run.Update(views.LogLinesMsg{Lines: a.sink.Drain()})
		_, cmd := a.run.Update(msg)
		return a, cmd

	case views.LogLinesMsg:
		_, cmd := a.run.Update(msg)
		return a, tea.Batch(cmd, a.waitForLog())

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.run.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewMenu:
		_, cmd = a.menu.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewRun:
		_, cmd = a.run.Update(msg)
	case ViewLookup:
		_, cmd = a.lookup.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// start runs op in the background and switches to the run view
func (a *App) start(op views.Operation, values []string) tea.Cmd {
	if a.run.Running() {
		return nil
	}
	a.sink.Drain()
	a.state = ViewRun

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	services := a.services

	return tea.Batch(
		a.run.Start(op),
		func() tea.Msg {
			defer cancel()
			return services.run(ctx, op, values)
		},
	)
}

// waitForLog blocks until the sink has lines and delivers them
func (a *App) waitForLog() tea.Cmd {
	sink := a.sink
	return func() tea.Msg {
		<-sink.Notify()
		return views.LogLinesMsg{Lines: sink.Drain()}
	}
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewRun:
		return a.run.View()
	case ViewLookup:
		return a.lookup.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.menu.View()
	}
}
