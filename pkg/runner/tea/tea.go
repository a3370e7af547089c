// Package teaui is the interactive Bubble Tea front end for the list.
package teaui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/sal/pkg/app"
)

// Run starts the interactive UI and blocks until the user quits.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
