package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Display is where the garden shows text to the player.
type Display interface {
	// Floating shows a short-lived message above the stump.
	Floating(text string) error
	// Reply shows what the stump said.
	Reply(text string) error
	// Info shows status lines such as progress.
	Info(text string) error
}

// Console writes to a terminal, optionally styled with lipgloss.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	plain    bool
	floating lipgloss.Style
	reply    lipgloss.Style
	info     lipgloss.Style
}

// NewConsole creates a console display. With plain set no styling is applied.
func NewConsole(w io.Writer, plain bool) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:     w,
		plain: plain,
		floating: r.NewStyle().
			Foreground(lipgloss.Color("#006633")).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),
		reply: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6BCB77")).
			Foreground(lipgloss.Color("#007722")).
			Padding(0, 1),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#4D96FF")),
	}
}

func (c *Console) Floating(text string) error {
	return c.write(c.floating, text)
}

func (c *Console) Reply(text string) error {
	return c.write(c.reply, text)
}

func (c *Console) Info(text string) error {
	return c.write(c.info, text)
}

func (c *Console) write(style lipgloss.Style, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.plain {
		text = style.Render(text)
	}
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return fmt.Errorf("failed to write to display: %w", err)
	}
	return nil
}
