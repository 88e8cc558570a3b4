package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Options select the ambient credential and region context for a client.
type Options struct {
	// Region overrides the region from the shared config/environment.
	Region string
	// Profile selects a shared-config profile. Empty uses the default chain.
	Profile string
	// RoleARN, when set, assumes the role via STS before calling Bedrock.
	RoleARN string
}

// Client bundles the AWS service clients the tool talks to.
type Client struct {
	Bedrock *bedrock.Client
	STS     *sts.Client
	Region  string
}

// NewClient resolves ambient AWS configuration and returns service clients.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("no AWS region configured: set --region, AWS_REGION, or a region in your AWS profile")
	}

	if opts.RoleARN != "" {
		stsClient := sts.NewFromConfig(cfg)
		cfg.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(stsClient, opts.RoleARN))
	}

	return &Client{
		Bedrock: bedrock.NewFromConfig(cfg),
		STS:     sts.NewFromConfig(cfg),
		Region:  cfg.Region,
	}, nil
}

// CallerIdentity describes the principal behind the ambient credentials.
type CallerIdentity struct {
	Account string
	ARN     string
	UserID  string
}

// STSAPI is the subset of the STS client used for diagnostics.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// WhoAmI resolves the caller identity behind the ambient credentials.
func WhoAmI(ctx context.Context, api STSAPI) (*CallerIdentity, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller identity: %w", err)
	}
	return &CallerIdentity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}
