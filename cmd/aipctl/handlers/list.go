package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudeng/aipctl/internal/provisioner"
	"github.com/cloudeng/aipctl/internal/tags"
)

// ListOptions carry the admin/client list flags.
type ListOptions struct {
	ConnectionFlags

	// TagsJSON optionally filters results by tag set. Empty lists everything.
	TagsJSON string
	// JSONOutput switches from the styled table to machine-readable JSON.
	JSONOutput bool
}

// listedProfile is the JSON shape for --json output.
type listedProfile struct {
	Name            string            `json:"name"`
	ARN             string            `json:"arn"`
	FoundationModel string            `json:"foundationModel"`
	Tags            map[string]string `json:"tags,omitempty"`
}

// List handles admin/client list: shows application inference
// profiles, optionally filtered by tags.
func List(ctx context.Context, opts ListOptions) error {
	var filter tags.Set
	if opts.TagsJSON != "" {
		var err error
		filter, err = tags.Parse(opts.TagsJSON)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
	}

	cfg, err := loadToolConfig(opts.ConnectionFlags)
	if err != nil {
		return err
	}

	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	var profiles []provisioner.Profile
	if filter != nil {
		profiles, err = sess.prov.FindByTags(ctx, filter)
	} else {
		profiles, err = sess.prov.ListApplicationProfiles(ctx)
	}
	if err != nil {
		return err
	}

	if opts.JSONOutput {
		out := make([]listedProfile, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, listedProfile{
				Name:            p.Name,
				ARN:             p.ARN,
				FoundationModel: p.BaseModelID(),
				Tags:            p.Tags,
			})
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	if len(profiles) == 0 {
		fmt.Printf("No application inference profiles found in %s.\n", sess.region)
		return nil
	}

	fmt.Print(renderProfileTable(fmt.Sprintf("Application Inference Profiles (%s)", sess.region), profiles))
	return nil
}
