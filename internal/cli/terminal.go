package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/watchfire-io/nfwatch/internal/models"
)

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth reports the current stdout width, 0 when unknown. It is
// queried per frame so resizes take effect on the next redraw.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// useColor decides whether to style output for the given mode. "always"
// forces an ANSI profile so styles survive piping.
func useColor(mode string) bool {
	switch mode {
	case models.ColorNever:
		return false
	case models.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	default:
		return stdoutIsTerminal()
	}
}
