package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/client"
	"taskboard/internal/tui"
)

func main() {
	baseURL := os.Getenv("TASKBOARD_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	tokens, err := tui.NewFileTokenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating config dir: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(client.New(baseURL), tokens)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
