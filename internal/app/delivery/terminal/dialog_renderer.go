package terminal

import (
	"context"
	"fmt"
	"io"
	"medvault-client/internal/app/models"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var dialogIcons = map[models.DialogKind]string{
	models.DialogWarning:      "!",
	models.DialogConfirmation: "?",
	models.DialogProgress:     "…",
	models.DialogSuccess:      "✓",
	models.DialogError:        "✗",
}

// DialogRenderer prints workflow dialogs as bordered boxes.
type DialogRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
}

func NewDialogRenderer(out io.Writer) *DialogRenderer {
	return &DialogRenderer{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

func (r *DialogRenderer) Render(ctx context.Context, dialog models.Dialog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, r.format(dialog))
}

func (r *DialogRenderer) format(dialog models.Dialog) string {
	lines := []string{r.styles.Title.Render(fmt.Sprintf("%s %s", dialogIcons[dialog.Kind], dialog.Title))}
	if dialog.Message != "" {
		lines = append(lines, "", dialog.Message)
	}
	if len(dialog.Items) > 0 {
		lines = append(lines, "")
		for _, item := range dialog.Items {
			lines = append(lines, "  • "+item)
		}
	}
	if dialog.Footer != "" {
		lines = append(lines, "", r.styles.Muted.Render(dialog.Footer))
	}
	if dialog.ConfirmLabel != "" || dialog.CancelLabel != "" {
		lines = append(lines, "", fmt.Sprintf("[y] %s   [N] %s", dialog.ConfirmLabel, dialog.CancelLabel))
	}
	return r.styles.Box(dialog.Kind).Render(strings.Join(lines, "\n"))
}
