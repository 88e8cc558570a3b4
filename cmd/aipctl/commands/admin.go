package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudeng/aipctl/cmd/aipctl/handlers"
)

// Admin returns the admin command group.
func Admin() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator commands for provisioning inference profiles",
	}

	cmd.AddCommand(adminCreateAIP())
	cmd.AddCommand(adminList())

	return cmd
}

func adminCreateAIP() *cobra.Command {
	var opts handlers.CreateAIPOptions

	cmd := &cobra.Command{
		Use:   "create-aip",
		Short: "Create a tagged application inference profile",
		Long: `Create an application inference profile on Amazon Bedrock, tagged for
cost attribution.

The profile wraps a system-defined Claude inference profile. Pass one with
--base (ID or ARN) or pick interactively. The tags argument must be a JSON
object of string keys to string values, for example:

  aipctl admin create-aip --name alice-sonnet \
    --tags '{"Team": "cloud-engineering", "DeveloperId": "AdrianL"}'

An existing profile with the same name is reported as a conflict and
nothing is created. Pricing accrues against the wrapped model as soon as
the profile is used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.CreateAIP(cmd.Context(), opts)
		},
	}

	bindConnectionFlags(cmd, &opts.ConnectionFlags)
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Name of the application inference profile")
	cmd.Flags().StringVar(&opts.TagsJSON, "tags", "", "Resource tags as a JSON object")
	cmd.Flags().StringVar(&opts.Base, "base", "", "Base system inference profile (ID or ARN)")
	_ = cmd.MarkFlagRequired("tags")

	return cmd
}

func adminList() *cobra.Command {
	var opts handlers.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List application inference profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), opts)
		},
	}

	bindConnectionFlags(cmd, &opts.ConnectionFlags)
	cmd.Flags().StringVar(&opts.TagsJSON, "tags", "", "Filter by tags (JSON object)")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Output in JSON format")

	return cmd
}
