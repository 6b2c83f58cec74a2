package notify

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Terminal prints the alert as a bordered box and, when in is an interactive
// terminal, blocks until Enter is pressed.
type Terminal struct {
	out io.Writer
	in  io.Reader
}

func NewTerminal(out io.Writer, in io.Reader) *Terminal {
	return &Terminal{out: out, in: in}
}

// Stderr is a Terminal on the process's stderr/stdin.
func Stderr() *Terminal {
	return NewTerminal(os.Stderr, os.Stdin)
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffb4ab")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffb4ab")).
			Bold(true)
)

func (t *Terminal) Notify(title, message string) {
	body := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", message)
	fmt.Fprintln(t.out, boxStyle.Render(body))

	if !isTerminal(t.in) {
		return
	}
	fmt.Fprint(t.out, "Press Enter to continue...")
	bufio.NewReader(t.in).ReadString('\n')
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
