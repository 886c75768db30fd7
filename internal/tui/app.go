package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/client"
	"taskboard/internal/model"
)

// Currently active view
type view int

const (
	viewAuth view = iota
	viewProjects
	viewBoard
)

type App struct {
	api    *client.Client
	tokens TokenStore

	currentView view
	width       int
	height      int

	// resource slices
	auth     authSlice
	projects projectsSlice
	tasks    tasksSlice
	notices  []notice

	currentProject model.Project

	authForm    *authForm
	projectList *projectListView
	board       *boardView
}

// NewApp builds the application model. A persisted token is loaded once
// here; when present the app starts on the project list instead of the
// login form.
func NewApp(api *client.Client, tokens TokenStore) *App {
	a := &App{
		api:         api,
		tokens:      tokens,
		currentView: viewAuth,
	}
	a.authForm = newAuthForm(a)
	a.projectList = newProjectListView(a)
	a.board = newBoardView(a)

	if token, err := tokens.Load(); err == nil && token != "" {
		api.SetToken(token)
		a.auth.status = statusSucceeded
		a.currentView = viewProjects
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{noticeTickCmd()}
	if a.currentView == viewProjects {
		a.projects.status = statusLoading
		cmds = append(cmds, profileCmd(a.api), fetchProjectsCmd(a.api))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			if a.currentView != viewAuth {
				return a, a.logoutCmd()
			}
		}

	case noticeTickMsg:
		a.notices = pruneNotices(a.notices, msg.at)
		return a, noticeTickCmd()

	case errMsg:
		a.failSlice(msg.op, msg.err.Error())
		a.notices = pushNotice(a.notices, msg.err.Error(), noticeError, time.Now())
		return a, nil

	case sessionMsg:
		a.auth.status = statusSucceeded
		a.auth.session = msg.session
		a.api.SetToken(msg.session.Token)
		if err := a.tokens.Save(msg.session.Token); err != nil {
			a.notices = pushNotice(a.notices, "Could not persist session", noticeError, time.Now())
		}
		a.notices = pushNotice(a.notices, msg.session.Message, noticeSuccess, time.Now())
		a.currentView = viewProjects
		a.projects.status = statusLoading
		return a, fetchProjectsCmd(a.api)

	case profileMsg:
		a.auth.session.ID = msg.user.ID.Hex()
		a.auth.session.Name = msg.user.Name
		a.auth.session.Email = msg.user.Email
		return a, nil

	case projectsMsg:
		a.projects.status = statusSucceeded
		a.projects.items = msg.projects
		return a, nil

	case projectCreatedMsg:
		a.projects.status = statusSucceeded
		a.projects.items = append([]model.Project{msg.project}, a.projects.items...)
		a.notices = pushNotice(a.notices, "Project created", noticeSuccess, time.Now())
		return a, nil

	case projectDeletedMsg:
		a.projects.status = statusSucceeded
		a.projects.items = removeProject(a.projects.items, msg.id)
		a.notices = pushNotice(a.notices, "Project and its tasks deleted", noticeSuccess, time.Now())
		return a, nil

	case tasksMsg:
		a.tasks.status = statusSucceeded
		a.tasks.items = msg.tasks
		return a, nil

	case taskCreatedMsg:
		a.tasks.status = statusSucceeded
		a.tasks.items = append(a.tasks.items, msg.task)
		a.notices = pushNotice(a.notices, "Task created", noticeSuccess, time.Now())
		return a, nil

	case taskUpdatedMsg:
		a.tasks.status = statusSucceeded
		a.tasks.items = replaceTask(a.tasks.items, msg.task)
		a.notices = pushNotice(a.notices, "Task updated", noticeSuccess, time.Now())
		return a, nil

	case taskDeletedMsg:
		a.tasks.status = statusSucceeded
		a.tasks.items = removeTask(a.tasks.items, msg.id)
		a.notices = pushNotice(a.notices, "Task deleted", noticeSuccess, time.Now())
		return a, nil

	case loggedOutMsg:
		a.resetSlices()
		a.currentView = viewAuth
		return a, nil
	}

	switch a.currentView {
	case viewAuth:
		return a, a.authForm.update(msg)
	case viewProjects:
		return a, a.projectList.update(msg)
	case viewBoard:
		return a, a.board.update(msg)
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.currentView {
	case viewAuth:
		body = a.authForm.view()
	case viewProjects:
		body = a.projectList.view()
	case viewBoard:
		body = a.board.view()
	}

	if len(a.notices) == 0 {
		return body
	}

	lines := make([]string, 0, len(a.notices))
	for _, n := range a.notices {
		lines = append(lines, noticeStyle(n.level).Render(n.text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, strings.Join(lines, "\n"))
}

// openProject switches to the board and loads the project's tasks.
func (a *App) openProject(p model.Project) tea.Cmd {
	a.currentProject = p
	a.currentView = viewBoard
	a.tasks.status = statusLoading
	a.tasks.items = nil
	a.board.reset()
	return fetchTasksCmd(a.api, p.ID.Hex())
}

func (a *App) backToProjects() tea.Cmd {
	a.currentView = viewProjects
	a.projects.status = statusLoading
	return fetchProjectsCmd(a.api)
}

// logoutCmd clears the persisted token, then resets all slices.
func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		_ = a.tokens.Clear()
		return loggedOutMsg{}
	}
}

func (a *App) resetSlices() {
	a.api.SetToken("")
	a.auth = authSlice{}
	a.projects = projectsSlice{}
	a.tasks = tasksSlice{}
	a.notices = nil
	a.currentProject = model.Project{}
	a.authForm = newAuthForm(a)
	a.projectList = newProjectListView(a)
	a.board = newBoardView(a)
}

func (a *App) failSlice(op, message string) {
	switch {
	case op == "login" || op == "register" || op == "profile":
		a.auth.status = statusFailed
		a.auth.message = message
	case strings.Contains(op, "project"):
		a.projects.status = statusFailed
		a.projects.message = message
	default:
		a.tasks.status = statusFailed
		a.tasks.message = message
	}
}
