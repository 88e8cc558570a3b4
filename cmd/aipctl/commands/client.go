package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudeng/aipctl/cmd/aipctl/handlers"
)

// Client returns the client command group.
func Client() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Developer self-service commands",
	}

	cmd.AddCommand(clientSetup())
	cmd.AddCommand(clientList())

	return cmd
}

func clientSetup() *cobra.Command {
	var opts handlers.SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Point the local coding agent at your inference profile",
		Long: `Find the application inference profile matching your identity tags and
write the local coding-agent settings file to use it.

The tags argument must be a JSON object of string keys to string values:

  aipctl client setup --tags '{"Team": "cloud-engineering", "DeveloperId": "AdrianL"}'

This command never creates provider resources. Re-running it converges on
the same settings file. When no profile matches, it reports not-found and
leaves local configuration untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), opts)
		},
	}

	bindConnectionFlags(cmd, &opts.ConnectionFlags)
	cmd.Flags().StringVar(&opts.TagsJSON, "tags", "", "Your identity tags as a JSON object")
	cmd.Flags().StringVar(&opts.SettingsPath, "settings-path", "", "Settings file to write (default: ~/.claude/settings.json)")
	_ = cmd.MarkFlagRequired("tags")

	return cmd
}

func clientList() *cobra.Command {
	var opts handlers.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inference profiles matching your tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), opts)
		},
	}

	bindConnectionFlags(cmd, &opts.ConnectionFlags)
	cmd.Flags().StringVar(&opts.TagsJSON, "tags", "", "Filter by tags (JSON object)")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Output in JSON format")

	return cmd
}
