// Package home is the entry dashboard: overall study stats plus the
// doors into research, the saved collection, and past exams.
package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gfranca/mestre/internal/examinfo"
	"github.com/gfranca/mestre/internal/questiongen"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/screens/guide"
	"github.com/gfranca/mestre/internal/screens/mystudies"
	"github.com/gfranca/mestre/internal/screens/pastexams"
	"github.com/gfranca/mestre/internal/screens/placeholder"
	studysvc "github.com/gfranca/mestre/internal/study"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/workspace"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	ws         *workspace.Workspace
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The AI services may be nil when no
// provider is configured; the menu then routes to a notice instead.
func New(ws *workspace.Workspace, exams *examinfo.Service, questions *questiongen.Service, studyService *studysvc.Service) *HomeScreen {
	menuLabels := []string{"RESEARCH AN EXAM", "MY STUDIES", "PAST EXAMS", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if exams == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Exam research")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: guide.New(ws, exams, questions, studyService),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: mystudies.New(ws, exams, questions, studyService),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if questions == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Past exams")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pastexams.New(ws, questions)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ws:         ws,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	h.ws.SetView(workspace.ViewHome)
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
