package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudeng/aipctl/internal/tags"
)

// CreateAIPOptions carry the admin create-aip flags.
type CreateAIPOptions struct {
	ConnectionFlags

	// Name of the application inference profile to create.
	Name string
	// TagsJSON is the raw --tags argument.
	TagsJSON string
	// Base is a system-defined inference profile ID or ARN to wrap.
	// Empty falls back to the configured default, then to an
	// interactive prompt.
	Base string
}

// CreateAIP handles admin create-aip: validates input locally, resolves
// the base profile, then issues one check-then-create against Bedrock.
func CreateAIP(ctx context.Context, opts CreateAIPOptions) error {
	if strings.TrimSpace(opts.Name) == "" {
		return fmt.Errorf("validation error: --name is required")
	}
	tagSet, err := tags.Parse(opts.TagsJSON)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	cfg, err := loadToolConfig(opts.ConnectionFlags)
	if err != nil {
		return err
	}

	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	base := opts.Base
	if base == "" {
		base = cfg.BaseProfile
	}
	baseARN, err := resolveBaseProfile(ctx, sess, base)
	if err != nil {
		return err
	}

	log.Printf("Creating application inference profile %q in %s", opts.Name, sess.region)
	handle, err := sess.prov.Create(ctx, opts.Name, baseARN, tagSet)
	if err != nil {
		return err
	}

	fmt.Print(renderHandle(handle))
	return nil
}

// resolveBaseProfile turns the base selection into a system profile ARN.
// An explicit ARN passes through; an ID is matched against the
// available system profiles; empty triggers an interactive prompt.
func resolveBaseProfile(ctx context.Context, sess *session, base string) (string, error) {
	if strings.HasPrefix(base, "arn:") {
		return base, nil
	}

	candidates, err := sess.prov.ListBaseProfiles(ctx)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no Claude system inference profiles available in %s; check model access in the Bedrock console", sess.region)
	}

	if base != "" {
		for _, p := range candidates {
			if p.ID == base {
				return p.ARN, nil
			}
		}
		return "", fmt.Errorf("base inference profile %q not found in %s", base, sess.region)
	}

	if len(candidates) == 1 {
		return candidates[0].ARN, nil
	}
	if !stdoutIsTTY() {
		return "", fmt.Errorf("--base is required when not running interactively")
	}

	selected, err := selectProfile("Select the base inference profile to wrap", candidates)
	if err != nil {
		return "", err
	}
	return selected.ARN, nil
}
