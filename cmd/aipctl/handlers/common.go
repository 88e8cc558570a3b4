// Package handlers implements command execution for the aipctl CLI.
//
// Commands in the commands package bind flags and delegate here.
// Handlers resolve configuration, construct the provider clients, and
// render results. Provider construction goes through package-level
// factory variables so tests can substitute fakes.
package handlers

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/cloudeng/aipctl/internal/config"
	platformbedrock "github.com/cloudeng/aipctl/internal/platform/bedrock"
	"github.com/cloudeng/aipctl/internal/provisioner"
)

// ConnectionFlags are the flags shared by every remote command.
type ConnectionFlags struct {
	ConfigPath string
	Region     string
	Profile    string
	RoleARN    string
}

// session bundles the resolved config and provider access for one invocation.
type session struct {
	cfg  *config.Config
	prov *provisioner.Provisioner
	sts  platformbedrock.STSAPI
	// region actually resolved by the AWS config chain.
	region string
}

// Factory variables replaced in tests.
var (
	newSession = realSession

	stdoutIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// loadToolConfig resolves flags, environment, and the optional user
// config file into a Config.
func loadToolConfig(flags ConnectionFlags) (*config.Config, error) {
	path := flags.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultFilePath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path, config.Overrides{
		Region:  flags.Region,
		Profile: flags.Profile,
		RoleARN: flags.RoleARN,
	})
}

// realSession builds a session against the live AWS control plane.
func realSession(ctx context.Context, cfg *config.Config) (*session, error) {
	client, err := platformbedrock.NewClient(ctx, platformbedrock.Options{
		Region:  cfg.Region,
		Profile: cfg.Profile,
		RoleARN: cfg.RoleARN,
	})
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		prov:   provisioner.New(client.Bedrock),
		sts:    client.STS,
		region: client.Region,
	}, nil
}
