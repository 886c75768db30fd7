package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/client"
	"taskboard/internal/model"
)

const requestTimeout = 10 * time.Second

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func loginCmd(api *client.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		s, err := api.Login(ctx, email, password)
		if err != nil {
			return errMsg{op: "login", err: err}
		}
		return sessionMsg{session: *s}
	}
}

func registerCmd(api *client.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		s, err := api.Register(ctx, name, email, password)
		if err != nil {
			return errMsg{op: "register", err: err}
		}
		return sessionMsg{session: *s}
	}
}

func profileCmd(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		u, err := api.Profile(ctx)
		if err != nil {
			return errMsg{op: "profile", err: err}
		}
		return profileMsg{user: *u}
	}
}

func fetchProjectsCmd(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		projects, err := api.Projects(ctx)
		if err != nil {
			return errMsg{op: "projects", err: err}
		}
		return projectsMsg{projects: projects}
	}
}

func createProjectCmd(api *client.Client, name, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		p, err := api.CreateProject(ctx, name, description)
		if err != nil {
			return errMsg{op: "create project", err: err}
		}
		return projectCreatedMsg{project: *p}
	}
}

func deleteProjectCmd(api *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		if err := api.DeleteProject(ctx, id); err != nil {
			return errMsg{op: "delete project", err: err}
		}
		return projectDeletedMsg{id: id}
	}
}

func fetchTasksCmd(api *client.Client, projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		tasks, err := api.TasksByProject(ctx, projectID)
		if err != nil {
			return errMsg{op: "tasks", err: err}
		}
		return tasksMsg{projectID: projectID, tasks: tasks}
	}
}

func createTaskCmd(api *client.Client, in model.CreateTaskInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		t, err := api.CreateTask(ctx, in)
		if err != nil {
			return errMsg{op: "create task", err: err}
		}
		return taskCreatedMsg{task: *t}
	}
}

// moveTaskCmd changes only the column: the update carries the task's
// existing title, description and due date alongside the new status.
func moveTaskCmd(api *client.Client, t model.Task, newStatus string) tea.Cmd {
	return func() tea.Msg {
		in := model.UpdateTaskInput{
			Title:       &t.Title,
			Description: &t.Description,
			Status:      &newStatus,
		}
		if t.DueDate != nil {
			due := t.DueDate.Format(time.RFC3339)
			in.DueDate = &due
		}

		ctx, cancel := withTimeout()
		defer cancel()
		updated, err := api.UpdateTask(ctx, t.ID.Hex(), in)
		if err != nil {
			return errMsg{op: "move task", err: err}
		}
		return taskUpdatedMsg{task: *updated}
	}
}

func deleteTaskCmd(api *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		if err := api.DeleteTask(ctx, id); err != nil {
			return errMsg{op: "delete task", err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func noticeTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return noticeTickMsg{at: t}
	})
}
