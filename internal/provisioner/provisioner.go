package provisioner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/google/uuid"

	"github.com/cloudeng/aipctl/internal/retry"
	"github.com/cloudeng/aipctl/internal/tags"
)

// BedrockAPI is the subset of the Bedrock control-plane client the
// provisioner needs. Mirrors the aws-sdk-go-v2 method signatures so
// the real client satisfies it directly and tests use fakes.
type BedrockAPI interface {
	ListInferenceProfiles(ctx context.Context, params *bedrock.ListInferenceProfilesInput, optFns ...func(*bedrock.Options)) (*bedrock.ListInferenceProfilesOutput, error)
	ListTagsForResource(ctx context.Context, params *bedrock.ListTagsForResourceInput, optFns ...func(*bedrock.Options)) (*bedrock.ListTagsForResourceOutput, error)
	CreateInferenceProfile(ctx context.Context, params *bedrock.CreateInferenceProfileInput, optFns ...func(*bedrock.Options)) (*bedrock.CreateInferenceProfileOutput, error)
}

// Profile describes an inference profile on the provider side.
type Profile struct {
	Name         string
	ID           string
	ARN          string
	Description  string
	BaseModelARN string
	Tags         tags.Set
}

// BaseModelID returns the trailing model identifier of the base model ARN.
func (p Profile) BaseModelID() string {
	if i := strings.LastIndex(p.BaseModelARN, "/"); i >= 0 {
		return p.BaseModelARN[i+1:]
	}
	return p.BaseModelARN
}

// Handle confirms a completed creation: the provider-assigned
// identifier plus an echo of what was applied.
type Handle struct {
	ARN          string
	Name         string
	BaseModelARN string
	Tags         tags.Set
}

// Provisioner issues idempotent create/lookup calls against the
// Bedrock control plane. Construct with New; the zero value is not usable.
type Provisioner struct {
	api       BedrockAPI
	retryOpts []retry.Option

	// newToken generates the idempotency token for create calls.
	newToken func() string
}

// New returns a Provisioner backed by the given control-plane client.
func New(api BedrockAPI, opts ...retry.Option) *Provisioner {
	return &Provisioner{
		api:       api,
		retryOpts: opts,
		newToken:  func() string { return uuid.NewString() },
	}
}

const listPageSize = 250

// legacyModelMarkers excludes previous-generation Claude profiles from
// the base model candidates offered to admins.
var legacyModelMarkers = []string{"claude-3-5", "claude-3-haiku", "claude-3-sonnet", "claude-3-opus"}

// Create provisions a tagged application inference profile wrapping
// baseARN. The name is checked against existing application profiles
// first; a collision returns a conflict error without issuing the
// create call. Pricing accrues against the wrapped model as soon as
// the profile is used.
func (p *Provisioner) Create(ctx context.Context, name, baseARN string, ts tags.Set) (*Handle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("profile name is required")
	}
	if strings.TrimSpace(baseARN) == "" {
		return nil, validationErr("base inference profile is required")
	}
	if err := ts.Validate(); err != nil {
		return nil, validationErr("%w", err)
	}

	existing, err := p.ListApplicationProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, prof := range existing {
		if prof.Name == name {
			return nil, &Error{
				Category: CategoryConflict,
				Op:       "create inference profile",
				Err:      fmt.Errorf("application inference profile %q already exists (%s)", name, prof.ARN),
			}
		}
	}

	awsTags := make([]types.Tag, 0, len(ts))
	for _, k := range ts.Keys() {
		awsTags = append(awsTags, types.Tag{Key: aws.String(k), Value: aws.String(ts[k])})
	}

	input := &bedrock.CreateInferenceProfileInput{
		InferenceProfileName: aws.String(name),
		Description:          aws.String(fmt.Sprintf("Application inference profile %s", name)),
		ModelSource:          &types.InferenceProfileModelSourceMemberCopyFrom{Value: baseARN},
		ClientRequestToken:   aws.String(p.newToken()),
		Tags:                 awsTags,
	}

	var out *bedrock.CreateInferenceProfileOutput
	if err := p.do(ctx, "create inference profile", func() error {
		var callErr error
		out, callErr = p.api.CreateInferenceProfile(ctx, input)
		return callErr
	}); err != nil {
		return nil, err
	}

	return &Handle{
		ARN:          aws.ToString(out.InferenceProfileArn),
		Name:         name,
		BaseModelARN: baseARN,
		Tags:         ts,
	}, nil
}

// FindByTags returns the application inference profiles whose tags
// contain every entry of filter.
func (p *Provisioner) FindByTags(ctx context.Context, filter tags.Set) ([]Profile, error) {
	if err := filter.Validate(); err != nil {
		return nil, validationErr("%w", err)
	}

	all, err := p.ListApplicationProfiles(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Profile
	for _, prof := range all {
		if filter.Matches(prof.Tags) {
			matched = append(matched, prof)
		}
	}
	return matched, nil
}

// ListApplicationProfiles returns all application inference profiles
// in the account/region, each with its resource tags resolved.
func (p *Provisioner) ListApplicationProfiles(ctx context.Context) ([]Profile, error) {
	summaries, err := p.listProfiles(ctx, types.InferenceProfileTypeApplication)
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(summaries))
	for _, s := range summaries {
		prof := profileFromSummary(s)

		var tagsOut *bedrock.ListTagsForResourceOutput
		if err := p.do(ctx, "list resource tags", func() error {
			var callErr error
			tagsOut, callErr = p.api.ListTagsForResource(ctx, &bedrock.ListTagsForResourceInput{
				ResourceARN: s.InferenceProfileArn,
			})
			return callErr
		}); err != nil {
			return nil, err
		}

		prof.Tags = make(tags.Set, len(tagsOut.Tags))
		for _, t := range tagsOut.Tags {
			prof.Tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
		}
		profiles = append(profiles, prof)
	}
	return profiles, nil
}

// ListBaseProfiles returns the system-defined inference profiles an
// application profile can wrap, filtered to current-generation Claude
// models and sorted by profile ID.
func (p *Provisioner) ListBaseProfiles(ctx context.Context) ([]Profile, error) {
	summaries, err := p.listProfiles(ctx, types.InferenceProfileTypeSystemDefined)
	if err != nil {
		return nil, err
	}

	var profiles []Profile
	for _, s := range summaries {
		id := strings.ToLower(aws.ToString(s.InferenceProfileId))
		if !strings.Contains(id, "claude") {
			continue
		}
		legacy := false
		for _, marker := range legacyModelMarkers {
			if strings.Contains(id, marker) {
				legacy = true
				break
			}
		}
		if legacy {
			continue
		}
		profiles = append(profiles, profileFromSummary(s))
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

// listProfiles pages through ListInferenceProfiles for the given type.
func (p *Provisioner) listProfiles(ctx context.Context, typ types.InferenceProfileType) ([]types.InferenceProfileSummary, error) {
	var summaries []types.InferenceProfileSummary
	var nextToken *string

	for {
		input := &bedrock.ListInferenceProfilesInput{
			MaxResults: aws.Int32(listPageSize),
			TypeEquals: typ,
			NextToken:  nextToken,
		}

		var out *bedrock.ListInferenceProfilesOutput
		if err := p.do(ctx, "list inference profiles", func() error {
			var callErr error
			out, callErr = p.api.ListInferenceProfiles(ctx, input)
			return callErr
		}); err != nil {
			return nil, err
		}

		summaries = append(summaries, out.InferenceProfileSummaries...)
		if out.NextToken == nil || aws.ToString(out.NextToken) == "" {
			break
		}
		nextToken = out.NextToken
	}
	return summaries, nil
}

// do runs op with bounded backoff. Only errors classified transient
// (throttling, provider internal faults) are retried; authorization
// and conflict faults surface after a single attempt.
func (p *Provisioner) do(ctx context.Context, opName string, op func() error) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		err := op()
		if err == nil {
			return nil
		}
		classified := classify(opName, err)
		if classified.Transient {
			return classified
		}
		return retry.Fatal(classified)
	}, p.retryOpts...)
}

func profileFromSummary(s types.InferenceProfileSummary) Profile {
	prof := Profile{
		Name:        aws.ToString(s.InferenceProfileName),
		ID:          aws.ToString(s.InferenceProfileId),
		ARN:         aws.ToString(s.InferenceProfileArn),
		Description: aws.ToString(s.Description),
	}
	if len(s.Models) > 0 {
		prof.BaseModelARN = aws.ToString(s.Models[0].ModelArn)
	}
	return prof
}
