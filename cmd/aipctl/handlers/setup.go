package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudeng/aipctl/internal/settings"
	"github.com/cloudeng/aipctl/internal/tags"
)

// SetupOptions carry the client setup flags.
type SetupOptions struct {
	ConnectionFlags

	// TagsJSON is the raw --tags argument: the caller's own identity tags.
	TagsJSON string
	// SettingsPath overrides where the agent settings file is written.
	SettingsPath string
}

// Setup handles client setup: finds the application inference profile
// matching the caller's tags and points the local agent settings at it.
// Read-mostly and idempotent; re-running converges on the same file.
func Setup(ctx context.Context, opts SetupOptions) error {
	tagSet, err := tags.Parse(opts.TagsJSON)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	cfg, err := loadToolConfig(opts.ConnectionFlags)
	if err != nil {
		return err
	}
	if opts.SettingsPath != "" {
		cfg.SettingsPath = opts.SettingsPath
	}

	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	log.Printf("Finding application inference profiles matching tags: %s", tagSet)
	matches, err := sess.prov.FindByTags(ctx, tagSet)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Printf("No application inference profile matches tags %s in %s.\n", tagSet, sess.region)
		fmt.Println("Ask your administrator to create one with: aipctl admin create-aip")
		return nil
	}

	selected, err := selectProfile("Select the inference profile to use", matches)
	if err != nil {
		return err
	}
	fmt.Print(renderProfileDetails(selected))

	path := cfg.SettingsPath
	if path == "" {
		path, err = settings.DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := settings.Write(path, settings.Values{
		ProfileARN: selected.ARN,
		Region:     sess.region,
		AWSProfile: cfg.Profile,
	}); err != nil {
		return err
	}

	fmt.Print(okStyle.Render(fmt.Sprintf("  %s Settings written to %s", checkMark, path)))
	fmt.Println()
	return nil
}
