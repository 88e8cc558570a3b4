// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudeng/aipctl/cmd/aipctl/handlers"
)

// Root returns the root command for the aipctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aipctl",
		Short: "Onboard developers onto Amazon Bedrock with tagged inference profiles",
		Long: `aipctl provisions and discovers Amazon Bedrock application inference
profiles tagged for per-developer cost attribution.

Administrators create profiles with "aipctl admin create-aip"; developers
point their local coding agent at the profile matching their identity
tags with "aipctl client setup".`,
	}

	cmd.AddCommand(Admin())
	cmd.AddCommand(Client())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// bindConnectionFlags registers the flags shared by every remote command.
func bindConnectionFlags(cmd *cobra.Command, flags *handlers.ConnectionFlags) {
	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to configuration file (default: ~/.config/aipctl.yaml)")
	cmd.Flags().StringVar(&flags.Region, "region", "", "AWS region (default: ambient AWS configuration)")
	cmd.Flags().StringVar(&flags.Profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&flags.RoleARN, "role-arn", "", "IAM role to assume before calling Bedrock")
}
