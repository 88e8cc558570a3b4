package handlers

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/cloudeng/aipctl/internal/provisioner"
)

// selectProfile prompts for one profile out of candidates. Outside a
// TTY it returns the first candidate with a notice, so scripted runs
// stay non-blocking.
func selectProfile(title string, candidates []provisioner.Profile) (provisioner.Profile, error) {
	if len(candidates) == 0 {
		return provisioner.Profile{}, fmt.Errorf("no profiles to select from")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if !stdoutIsTTY() {
		fmt.Printf("Multiple profiles match; using %q (first match). Run interactively to choose.\n", candidates[0].Name)
		return candidates[0], nil
	}

	opts := make([]huh.Option[int], 0, len(candidates))
	for i, p := range candidates {
		label := p.Name
		if label == "" {
			label = p.ID
		}
		if model := p.BaseModelID(); model != "" {
			label = fmt.Sprintf("%s (%s)", label, model)
		}
		opts = append(opts, huh.NewOption(label, i))
	}

	var choice int
	sel := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice)

	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return provisioner.Profile{}, fmt.Errorf("selection cancelled: %w", err)
	}
	return candidates[choice], nil
}
