package tui

import (
	"time"

	"taskboard/internal/client"
	"taskboard/internal/model"
)

// Per-operation status for each resource slice: idle until a request is
// dispatched, then loading, then succeeded or failed.
type opStatus int

const (
	statusIdle opStatus = iota
	statusLoading
	statusSucceeded
	statusFailed
)

type authSlice struct {
	status  opStatus
	session client.Session
	message string
}

type projectsSlice struct {
	status  opStatus
	items   []model.Project
	message string
}

type tasksSlice struct {
	status  opStatus
	items   []model.Task
	message string
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

// notice is a transient notification. It disappears once expiry passes.
type notice struct {
	text    string
	level   noticeLevel
	expires time.Time
}

const noticeTTL = 4 * time.Second

func pushNotice(notices []notice, text string, level noticeLevel, now time.Time) []notice {
	return append(notices, notice{text: text, level: level, expires: now.Add(noticeTTL)})
}

func pruneNotices(notices []notice, now time.Time) []notice {
	kept := notices[:0]
	for _, n := range notices {
		if n.expires.After(now) {
			kept = append(kept, n)
		}
	}
	return kept
}

// boardColumns is the fixed column order of the board.
var boardColumns = []string{model.StatusPending, model.StatusInProgress, model.StatusCompleted}

// partitionTasks groups tasks into board columns by status. Tasks with an
// unknown status are dropped rather than rendered in a phantom column.
func partitionTasks(tasks []model.Task) map[string][]model.Task {
	cols := map[string][]model.Task{}
	for _, col := range boardColumns {
		cols[col] = []model.Task{}
	}
	for _, t := range tasks {
		if _, ok := cols[t.Status]; ok {
			cols[t.Status] = append(cols[t.Status], t)
		}
	}
	return cols
}

// moveTarget returns the status one column left (-1) or right (+1) of the
// given one, or "" when the move would fall off the board or the status
// is unknown.
func moveTarget(status string, delta int) string {
	for i, col := range boardColumns {
		if col == status {
			j := i + delta
			if j < 0 || j >= len(boardColumns) {
				return ""
			}
			return boardColumns[j]
		}
	}
	return ""
}

// replaceTask swaps the updated task into the slice by id.
func replaceTask(tasks []model.Task, updated model.Task) []model.Task {
	for i, t := range tasks {
		if t.ID == updated.ID {
			tasks[i] = updated
			return tasks
		}
	}
	return append(tasks, updated)
}

// removeTask drops the task with the given hex id.
func removeTask(tasks []model.Task, idHex string) []model.Task {
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID.Hex() != idHex {
			kept = append(kept, t)
		}
	}
	return kept
}

// removeProject drops the project with the given hex id.
func removeProject(projects []model.Project, idHex string) []model.Project {
	kept := projects[:0]
	for _, p := range projects {
		if p.ID.Hex() != idHex {
			kept = append(kept, p)
		}
	}
	return kept
}
