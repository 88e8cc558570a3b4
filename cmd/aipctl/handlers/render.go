package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudeng/aipctl/internal/provisioner"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	okStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
)

// renderProfileTable renders application inference profiles as an
// indexed table.
func renderProfileTable(title string, profiles []provisioner.Profile) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 72)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-3s %-28s %-40s", "#", "Profile Name", "Foundation Model")))
	b.WriteString("\n")

	for i, p := range profiles {
		fmt.Fprintf(&b, "  %-3d %-28s %-40s\n", i+1, p.Name, p.BaseModelID())
	}

	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 72)))
	b.WriteString("\n")
	return b.String()
}

// renderProfileDetails renders one profile with its tags.
func renderProfileDetails(p provisioner.Profile) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Profile Details"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %-18s %s\n", "Name:", p.Name)
	fmt.Fprintf(&b, "    %-18s %s\n", "Foundation Model:", p.BaseModelID())
	fmt.Fprintf(&b, "    %-18s %s\n", "ARN:", p.ARN)
	if len(p.Tags) > 0 {
		b.WriteString("    Tags:\n")
		for _, k := range p.Tags.Keys() {
			fmt.Fprintf(&b, "      %s = %s\n", k, p.Tags[k])
		}
	}
	return b.String()
}

// renderHandle renders the confirmation block after a successful create.
func renderHandle(h *provisioner.Handle) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Application Inference Profile"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %-18s %s\n", "Name:", h.Name)
	fmt.Fprintf(&b, "    %-18s %s\n", "ARN:", h.ARN)
	fmt.Fprintf(&b, "    %-18s %s\n", "Base Profile:", h.BaseModelARN)
	fmt.Fprintf(&b, "    %-18s %s\n", "Tags:", h.Tags.String())
	b.WriteString("\n")
	b.WriteString(okStyle.Render(fmt.Sprintf("  %s Profile %q created.", checkMark, h.Name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Cost-allocation data appears in the billing console after the provider's propagation delay."))
	b.WriteString("\n")
	return b.String()
}

// renderCheck renders one doctor check line.
func renderCheck(ok bool, label, detail string) string {
	mark := okStyle.Render(checkMark)
	if !ok {
		mark = failStyle.Render(crossMark)
	}
	line := fmt.Sprintf("  %s %s", mark, label)
	if detail != "" {
		line += dimStyle.Render(" — " + detail)
	}
	return line + "\n"
}
