package tui

import (
	"time"

	"taskboard/internal/client"
	"taskboard/internal/model"
)

// Messages produced by API commands. Each mutation has a success message;
// failures all flow through errMsg with the operation that failed.

type sessionMsg struct {
	session client.Session
}

type profileMsg struct {
	user model.PublicUser
}

type projectsMsg struct {
	projects []model.Project
}

type projectCreatedMsg struct {
	project model.Project
}

type projectDeletedMsg struct {
	id string
}

type tasksMsg struct {
	projectID string
	tasks     []model.Task
}

type taskCreatedMsg struct {
	task model.Task
}

type taskUpdatedMsg struct {
	task model.Task
}

type taskDeletedMsg struct {
	id string
}

type errMsg struct {
	op  string
	err error
}

// noticeTickMsg drives expiry of transient notifications.
type noticeTickMsg struct {
	at time.Time
}

// loggedOutMsg resets every slice and returns to the auth view.
type loggedOutMsg struct{}
