// Package fakes provides an in-memory Bedrock control-plane fake for tests.
package fakes

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
)

// FakeProfile seeds the fake with one provider-side profile.
type FakeProfile struct {
	Name         string
	ID           string
	ARN          string
	BaseModelARN string
	Type         types.InferenceProfileType
	Tags         map[string]string
}

// FakeBedrock is an in-memory implementation of the provisioner's
// BedrockAPI. It records every call so tests can assert on call
// counts and that validation failures never reach the provider.
type FakeBedrock struct {
	mu sync.Mutex

	Profiles []FakeProfile

	// Scripted errors, returned on every call when set.
	ListErr   error
	TagsErr   error
	CreateErr error

	// CreateErrOnce is consumed by the first create call only.
	CreateErrOnce error

	ListCalls   int
	TagsCalls   int
	CreateCalls int

	// LastCreateInput captures the most recent create request.
	LastCreateInput *bedrock.CreateInferenceProfileInput
}

// TotalCalls returns the number of provider invocations of any kind.
func (f *FakeBedrock) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls + f.TagsCalls + f.CreateCalls
}

// ListInferenceProfiles returns seeded profiles matching the requested type.
func (f *FakeBedrock) ListInferenceProfiles(_ context.Context, params *bedrock.ListInferenceProfilesInput, _ ...func(*bedrock.Options)) (*bedrock.ListInferenceProfilesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++

	if f.ListErr != nil {
		return nil, f.ListErr
	}

	out := &bedrock.ListInferenceProfilesOutput{}
	for _, p := range f.Profiles {
		if params.TypeEquals != "" && p.Type != params.TypeEquals {
			continue
		}
		out.InferenceProfileSummaries = append(out.InferenceProfileSummaries, types.InferenceProfileSummary{
			InferenceProfileName: aws.String(p.Name),
			InferenceProfileId:   aws.String(p.ID),
			InferenceProfileArn:  aws.String(p.ARN),
			Type:                 p.Type,
			Models:               []types.InferenceProfileModel{{ModelArn: aws.String(p.BaseModelARN)}},
		})
	}
	return out, nil
}

// ListTagsForResource returns the seeded tags for the given ARN.
func (f *FakeBedrock) ListTagsForResource(_ context.Context, params *bedrock.ListTagsForResourceInput, _ ...func(*bedrock.Options)) (*bedrock.ListTagsForResourceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TagsCalls++

	if f.TagsErr != nil {
		return nil, f.TagsErr
	}

	for _, p := range f.Profiles {
		if p.ARN != aws.ToString(params.ResourceARN) {
			continue
		}
		out := &bedrock.ListTagsForResourceOutput{}
		for k, v := range p.Tags {
			out.Tags = append(out.Tags, types.Tag{Key: aws.String(k), Value: aws.String(v)})
		}
		return out, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("no such resource")}
}

// CreateInferenceProfile appends a new application profile to the store.
func (f *FakeBedrock) CreateInferenceProfile(_ context.Context, params *bedrock.CreateInferenceProfileInput, _ ...func(*bedrock.Options)) (*bedrock.CreateInferenceProfileOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	f.LastCreateInput = params

	if f.CreateErrOnce != nil {
		err := f.CreateErrOnce
		f.CreateErrOnce = nil
		return nil, err
	}
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	name := aws.ToString(params.InferenceProfileName)
	for _, p := range f.Profiles {
		if p.Type == types.InferenceProfileTypeApplication && p.Name == name {
			return nil, &types.ConflictException{Message: aws.String("inference profile already exists")}
		}
	}

	tagMap := make(map[string]string, len(params.Tags))
	for _, t := range params.Tags {
		tagMap[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}

	base := ""
	if src, ok := params.ModelSource.(*types.InferenceProfileModelSourceMemberCopyFrom); ok {
		base = src.Value
	}

	arn := fmt.Sprintf("arn:aws:bedrock:us-east-1:000000000000:application-inference-profile/%s", name)
	f.Profiles = append(f.Profiles, FakeProfile{
		Name:         name,
		ID:           name,
		ARN:          arn,
		BaseModelARN: base,
		Type:         types.InferenceProfileTypeApplication,
		Tags:         tagMap,
	})

	return &bedrock.CreateInferenceProfileOutput{
		InferenceProfileArn: aws.String(arn),
		Status:              types.InferenceProfileStatusActive,
	}, nil
}
