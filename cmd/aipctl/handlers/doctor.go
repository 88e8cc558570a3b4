package handlers

import (
	"context"
	"fmt"
	"strings"

	platformbedrock "github.com/cloudeng/aipctl/internal/platform/bedrock"
	"github.com/cloudeng/aipctl/internal/provisioner"
)

// DoctorOptions carry the doctor flags.
type DoctorOptions struct {
	ConnectionFlags
}

// Doctor verifies the ambient AWS environment before onboarding:
// credential resolution, caller identity, and Bedrock list permission.
// It performs no mutation.
func Doctor(ctx context.Context, opts DoctorOptions) error {
	cfg, err := loadToolConfig(opts.ConnectionFlags)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  aipctl doctor"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	sess, err := newSession(ctx, cfg)
	if err != nil {
		b.WriteString(renderCheck(false, "AWS configuration", err.Error()))
		fmt.Print(b.String())
		return fmt.Errorf("environment is not ready")
	}
	b.WriteString(renderCheck(true, "AWS configuration", "region "+sess.region))

	healthy := true

	identity, err := platformbedrock.WhoAmI(ctx, sess.sts)
	if err != nil {
		healthy = false
		b.WriteString(renderCheck(false, "Credentials", err.Error()))
	} else {
		b.WriteString(renderCheck(true, "Credentials", identity.ARN))
	}

	profiles, err := sess.prov.ListApplicationProfiles(ctx)
	switch {
	case provisioner.IsAuthorization(err):
		healthy = false
		b.WriteString(renderCheck(false, "Bedrock access", "missing bedrock:ListInferenceProfiles permission"))
	case err != nil:
		healthy = false
		b.WriteString(renderCheck(false, "Bedrock access", err.Error()))
	default:
		b.WriteString(renderCheck(true, "Bedrock access", fmt.Sprintf("%d application inference profile(s)", len(profiles))))
	}

	base, err := sess.prov.ListBaseProfiles(ctx)
	switch {
	case err != nil:
		healthy = false
		b.WriteString(renderCheck(false, "Claude model availability", err.Error()))
	case len(base) == 0:
		healthy = false
		b.WriteString(renderCheck(false, "Claude model availability", "no current Claude system profiles; enable model access in the Bedrock console"))
	default:
		b.WriteString(renderCheck(true, "Claude model availability", fmt.Sprintf("%d base profile(s)", len(base))))
	}

	fmt.Print(b.String())
	if !healthy {
		return fmt.Errorf("environment is not ready")
	}
	return nil
}
