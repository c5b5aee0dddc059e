package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/examinfo"
	"github.com/gfranca/mestre/internal/history"
	"github.com/gfranca/mestre/internal/questiongen"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/screens/guide"
	"github.com/gfranca/mestre/internal/screens/home"
	"github.com/gfranca/mestre/internal/screens/mystudies"
	"github.com/gfranca/mestre/internal/screens/pastexams"
	runner "github.com/gfranca/mestre/internal/screens/simulation"
	studyscreen "github.com/gfranca/mestre/internal/screens/study"
	sim "github.com/gfranca/mestre/internal/simulation"
	studysvc "github.com/gfranca/mestre/internal/study"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/workspace"
)

// Options carries everything the UI needs. The AI services are nil when
// no provider is configured; the affected screens show a notice instead.
type Options struct {
	Workspace *workspace.Workspace
	Exams     *examinfo.Service
	Questions *questiongen.Service
	Study     *studysvc.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ws      *workspace.Workspace
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates an AppModel with the home screen at the bottom of
// the stack, plus whatever screens restore the previous session's view.
func newAppModel(opts Options) AppModel {
	ws := opts.Workspace
	if ws == nil {
		ws = workspace.New(nil)
	}

	homeScreen := home.New(ws, opts.Exams, opts.Questions, opts.Study)
	r := router.New(homeScreen)

	// Each push runs that screen's Init; the view the user lands on is
	// the last one pushed, and its async work is what the program must
	// resume. Home's Init runs only when there is nothing to restore,
	// because it resets the persisted view.
	restored := restoreStack(ws, opts)
	var initCmd tea.Cmd
	if len(restored) == 0 {
		initCmd = homeScreen.Init()
	}
	for _, s := range restored {
		initCmd = r.Push(s)
	}

	return AppModel{ws: ws, router: r, initCmd: initCmd}
}

// restoreStack rebuilds the screen stack the user left off on, as far as
// the persisted context allows. Restoration is best-effort: a view whose
// state is gone (or whose service is unavailable) falls back to home.
func restoreStack(ws *workspace.Workspace, opts Options) []screen.Screen {
	switch ws.Context.CurrentView {
	case workspace.ViewGuide:
		if opts.Exams != nil && ws.Context.ActiveExam != nil {
			return []screen.Screen{
				guide.NewForRecord(ws, opts.Exams, opts.Questions, opts.Study, *ws.Context.ActiveExam),
			}
		}

	case workspace.ViewMyStudies, workspace.ViewStudyContent:
		stack := []screen.Screen{
			mystudies.New(ws, opts.Exams, opts.Questions, opts.Study),
		}
		if ws.Context.CurrentView == workspace.ViewStudyContent &&
			opts.Exams != nil && ws.Context.ActiveExam != nil {
			stack = append(stack,
				guide.NewForRecord(ws, opts.Exams, opts.Questions, opts.Study, *ws.Context.ActiveExam))
			if opts.Study != nil && ws.Context.StudyContent != nil {
				stack = append(stack,
					studyscreen.New(ws, opts.Study, *ws.Context.ActiveExam))
			}
		}
		return stack

	case workspace.ViewPastExams:
		if opts.Questions != nil {
			return []screen.Screen{pastexams.New(ws, opts.Questions)}
		}

	case workspace.ViewSimulationActive:
		c := ws.Context
		if c.ActiveSimID != "" && len(c.ActiveSimQuestions) > 0 {
			eng := sim.New(c.ActiveSimID, c.ActiveSimTitle, c.SimConfig.Topic,
				c.ActiveSimQuestions, c.ActiveSimAnswers)
			return []screen.Screen{runner.New(ws, eng)}
		}
	}
	return nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that use esc themselves get the key instead.
			if ec, ok := m.router.Active().(screen.EscCapturer); ok && ec.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sessions := m.ws.AllSessions()
	header := layout.RenderHeader(title, len(sessions), history.OverallAccuracy(sessions), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
