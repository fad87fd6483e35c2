package terminal

import (
	"fmt"
	"io"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/utils"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const complaintWidth = 32

// TriageView prints the doctor's emergency board.
type TriageView struct {
	out    io.Writer
	styles Styles
}

func NewTriageView(out io.Writer) *TriageView {
	return &TriageView{out: out, styles: NewStyles(lipgloss.NewRenderer(out))}
}

func (v *TriageView) Render(page *models.TriagePage, now time.Time) {
	fmt.Fprintln(v.out, v.format(page, now))
}

func (v *TriageView) format(page *models.TriagePage, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n",
		v.styles.Urgency(models.UrgencyHigh).Render(fmt.Sprintf("HIGH %d", page.UrgencyStat[models.UrgencyHigh])),
		v.styles.Urgency(models.UrgencyMedium).Render(fmt.Sprintf("MEDIUM %d", page.UrgencyStat[models.UrgencyMedium])),
		v.styles.Urgency(models.UrgencyLow).Render(fmt.Sprintf("LOW %d", page.UrgencyStat[models.UrgencyLow])),
	)

	if len(page.Items) == 0 {
		b.WriteString(v.styles.Muted.Render("No emergency requests match the current filters."))
		return b.String()
	}

	b.WriteString(v.styles.Header().Render(fmt.Sprintf("%-6s %-8s %-20s %-*s %-12s %s",
		"ID", "URGENCY", "PATIENT", complaintWidth, "COMPLAINT", "CONTACT", "RECEIVED")))
	b.WriteString("\n")

	for _, item := range page.Items {
		complaint, notes := utils.SplitSymptoms(item.Symptoms)
		received := "unknown"
		if !item.CreatedAt.IsZero() {
			received = utils.TimeAgo(now, item.CreatedAt)
		}
		urgency := v.styles.Urgency(item.UrgencyLevel).Render(fmt.Sprintf("%-8s", item.UrgencyLevel))
		fmt.Fprintf(&b, "%-6d %s %-20s %-*s %-12s %s\n",
			item.ID, urgency, truncate(item.PatientName, 20), complaintWidth, truncate(complaint, complaintWidth), item.ContactNumber, received)
		if notes != "" {
			fmt.Fprintf(&b, "%6s %s\n", "", v.styles.Muted.Render("notes: "+notes))
		}
	}

	fmt.Fprintf(&b, "Page %d of %d (%d requests)", page.Page, page.TotalPages, page.TotalItems)
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
