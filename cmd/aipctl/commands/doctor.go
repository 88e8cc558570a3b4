package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudeng/aipctl/cmd/aipctl/handlers"
)

// Doctor returns the environment diagnostics command.
func Doctor() *cobra.Command {
	var opts handlers.DoctorOptions

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check AWS credentials and Bedrock access",
		Long: `Verify the ambient AWS environment before onboarding:

  - credentials resolve and identify a caller
  - Bedrock inference profiles can be listed
  - current Claude system profiles are available in the region

Performs no mutation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), opts)
		},
	}

	bindConnectionFlags(cmd, &opts.ConnectionFlags)

	return cmd
}
