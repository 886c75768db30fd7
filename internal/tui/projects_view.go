package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/model"
)

// projectListView shows the user's projects newest first. Enter opens the
// board for the selected project; n creates, d deletes after a confirm.
type projectListView struct {
	app              *App
	cursor           int
	creating         bool
	confirmingDelete bool
	newName          textinput.Model
	newDesc          textinput.Model
	focusIdx         int
}

func newProjectListView(app *App) *projectListView {
	name := textinput.New()
	name.Placeholder = "Project name"
	name.CharLimit = 80

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 200

	return &projectListView{app: app, newName: name, newDesc: desc}
}

func (v *projectListView) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v.updateInputs(msg)
	}

	if v.creating {
		return v.updateCreateForm(key)
	}

	if v.confirmingDelete {
		switch key.String() {
		case "y", "enter":
			v.confirmingDelete = false
			if p := v.selected(); p != nil {
				return deleteProjectCmd(v.app.api, p.ID.Hex())
			}
		default:
			v.confirmingDelete = false
		}
		return nil
	}

	switch key.String() {
	case "j", "down":
		if v.cursor < len(v.app.projects.items)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "enter":
		if p := v.selected(); p != nil {
			return v.app.openProject(*p)
		}
	case "n":
		v.creating = true
		v.focusIdx = 0
		v.newName.SetValue("")
		v.newDesc.SetValue("")
		v.newName.Focus()
		v.newDesc.Blur()
	case "d":
		if v.selected() != nil {
			v.confirmingDelete = true
		}
	case "r":
		v.app.projects.status = statusLoading
		return fetchProjectsCmd(v.app.api)
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (v *projectListView) updateCreateForm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		v.creating = false
		return nil
	case "tab", "shift+tab":
		v.focusIdx = 1 - v.focusIdx
		if v.focusIdx == 0 {
			v.newName.Focus()
			v.newDesc.Blur()
		} else {
			v.newName.Blur()
			v.newDesc.Focus()
		}
		return nil
	case "enter":
		name := strings.TrimSpace(v.newName.Value())
		if name == "" {
			return nil
		}
		v.creating = false
		v.app.projects.status = statusLoading
		return createProjectCmd(v.app.api, name, strings.TrimSpace(v.newDesc.Value()))
	}
	return v.updateInputs(key)
}

func (v *projectListView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.newName, cmd = v.newName.Update(msg)
	cmds = append(cmds, cmd)
	v.newDesc, cmd = v.newDesc.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (v *projectListView) selected() *model.Project {
	if v.cursor < 0 || v.cursor >= len(v.app.projects.items) {
		return nil
	}
	return &v.app.projects.items[v.cursor]
}

func (v *projectListView) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	if v.app.auth.session.Name != "" {
		b.WriteString(dimStyle.Render("  " + v.app.auth.session.Name))
	}
	b.WriteString("\n\n")

	if v.creating {
		b.WriteString("New project\n")
		b.WriteString(v.newName.View())
		b.WriteString("\n")
		b.WriteString(v.newDesc.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter create • tab switch field • esc cancel"))
		return b.String()
	}

	switch {
	case v.app.projects.status == statusLoading:
		b.WriteString(dimStyle.Render("Loading projects..."))
		b.WriteString("\n")
	case len(v.app.projects.items) == 0:
		b.WriteString(dimStyle.Render("No projects yet. Press n to create one."))
		b.WriteString("\n")
	default:
		for i, p := range v.app.projects.items {
			line := fmt.Sprintf("%s  %s", p.Name, dimStyle.Render(p.Description))
			if i == v.cursor {
				line = selectedCardStyle.Render("> " + p.Name + "  " + p.Description)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if v.confirmingDelete {
		if p := v.selected(); p != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Delete %q and all of its tasks? (y/n)", p.Name)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter open • n new • d delete • r refresh • ctrl+l logout • q quit"))
	return b.String()
}
