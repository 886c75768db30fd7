package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/model"
)

// boardView renders the current project's tasks in three fixed status
// columns. It is a pure projection of the tasks slice: moving a card
// issues a status update and the board re-renders from the merged
// response, nothing is reordered locally.
type boardView struct {
	app      *App
	col      int
	row      int
	creating bool
	newTitle textinput.Model
	newDue   textinput.Model
	focusIdx int
}

func newBoardView(app *App) *boardView {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 120

	due := textinput.New()
	due.Placeholder = "Due date YYYY-MM-DD (optional)"
	due.CharLimit = 10

	return &boardView{app: app, newTitle: title, newDue: due}
}

func (v *boardView) reset() {
	v.col = 0
	v.row = 0
	v.creating = false
}

func (v *boardView) columns() map[string][]model.Task {
	return partitionTasks(v.app.tasks.items)
}

func (v *boardView) selected() *model.Task {
	cols := v.columns()
	tasks := cols[boardColumns[v.col]]
	if v.row < 0 || v.row >= len(tasks) {
		return nil
	}
	return &tasks[v.row]
}

func (v *boardView) clampRow() {
	tasks := v.columns()[boardColumns[v.col]]
	if v.row >= len(tasks) {
		v.row = len(tasks) - 1
	}
	if v.row < 0 {
		v.row = 0
	}
}

func (v *boardView) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v.updateInputs(msg)
	}

	if v.creating {
		return v.updateCreateForm(key)
	}

	switch key.String() {
	case "h", "left":
		if v.col > 0 {
			v.col--
			v.clampRow()
		}
	case "l", "right":
		if v.col < len(boardColumns)-1 {
			v.col++
			v.clampRow()
		}
	case "j", "down":
		v.row++
		v.clampRow()
	case "k", "up":
		if v.row > 0 {
			v.row--
		}
	case "H", "shift+left":
		return v.moveSelected(-1)
	case "L", "shift+right":
		return v.moveSelected(+1)
	case "n":
		v.creating = true
		v.focusIdx = 0
		v.newTitle.SetValue("")
		v.newDue.SetValue("")
		v.newTitle.Focus()
		v.newDue.Blur()
	case "d":
		if t := v.selected(); t != nil {
			return deleteTaskCmd(v.app.api, t.ID.Hex())
		}
	case "r":
		v.app.tasks.status = statusLoading
		return fetchTasksCmd(v.app.api, v.app.currentProject.ID.Hex())
	case "q", "esc":
		return v.app.backToProjects()
	}
	return nil
}

// moveSelected shifts the selected card one column over. Falling off the
// board edge, or a target equal to the current column, is a no-op and no
// request is issued.
func (v *boardView) moveSelected(delta int) tea.Cmd {
	t := v.selected()
	if t == nil {
		return nil
	}
	target := moveTarget(t.Status, delta)
	if target == "" || target == t.Status {
		return nil
	}
	v.app.tasks.status = statusLoading
	return moveTaskCmd(v.app.api, *t, target)
}

func (v *boardView) updateCreateForm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		v.creating = false
		return nil
	case "tab", "shift+tab":
		v.focusIdx = 1 - v.focusIdx
		if v.focusIdx == 0 {
			v.newTitle.Focus()
			v.newDue.Blur()
		} else {
			v.newTitle.Blur()
			v.newDue.Focus()
		}
		return nil
	case "enter":
		title := strings.TrimSpace(v.newTitle.Value())
		if title == "" {
			return nil
		}
		v.creating = false
		v.app.tasks.status = statusLoading
		return createTaskCmd(v.app.api, model.CreateTaskInput{
			Title:     title,
			ProjectID: v.app.currentProject.ID.Hex(),
			DueDate:   strings.TrimSpace(v.newDue.Value()),
		})
	}
	return v.updateInputs(key)
}

func (v *boardView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.newTitle, cmd = v.newTitle.Update(msg)
	cmds = append(cmds, cmd)
	v.newDue, cmd = v.newDue.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

var columnTitles = map[string]string{
	model.StatusPending:    "Pending",
	model.StatusInProgress: "In progress",
	model.StatusCompleted:  "Completed",
}

func (v *boardView) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.app.currentProject.Name))
	b.WriteString("\n\n")

	if v.creating {
		b.WriteString("New task\n")
		b.WriteString(v.newTitle.View())
		b.WriteString("\n")
		b.WriteString(v.newDue.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter create • tab switch field • esc cancel"))
		return b.String()
	}

	if v.app.tasks.status == statusLoading && len(v.app.tasks.items) == 0 {
		b.WriteString(dimStyle.Render("Loading tasks..."))
		return b.String()
	}

	colWidth := 30
	if v.width() > 0 {
		if w := v.width()/len(boardColumns) - 4; w > 16 {
			colWidth = w
		}
	}

	cols := v.columns()
	rendered := make([]string, 0, len(boardColumns))
	for ci, status := range boardColumns {
		var col strings.Builder
		col.WriteString(columnHeaderStyle.Render(fmt.Sprintf("%s (%d)", columnTitles[status], len(cols[status]))))
		col.WriteString("\n\n")

		for ti, t := range cols[status] {
			line := t.Title
			if t.DueDate != nil {
				line += dimStyle.Render(" · " + t.DueDate.Format("2006-01-02"))
			}
			if ci == v.col && ti == v.row {
				line = selectedCardStyle.Render(t.Title)
				if t.DueDate != nil {
					line += dimStyle.Render(" · " + t.DueDate.Format("2006-01-02"))
				}
			} else {
				line = cardStyle.Render(line)
			}
			col.WriteString(line)
			col.WriteString("\n")
		}

		style := columnStyle
		if ci == v.col {
			style = focusedColumnStyle
		}
		rendered = append(rendered, style.Width(colWidth).Render(col.String()))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("h/l column • j/k card • H/L move card • n new • d delete • r refresh • esc back"))
	return b.String()
}

func (v *boardView) width() int { return v.app.width }
