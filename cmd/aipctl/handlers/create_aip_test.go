package handlers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeng/aipctl/internal/provisioner"
	"github.com/cloudeng/aipctl/internal/provisioner/fakes"
)

const (
	sysProfileID  = "us.anthropic.claude-sonnet-4-20250514-v1:0"
	sysProfileARN = "arn:aws:bedrock:us-east-1::inference-profile/" + sysProfileID
)

func fakeWithBaseProfile() *fakes.FakeBedrock {
	return &fakes.FakeBedrock{
		Profiles: []fakes.FakeProfile{{
			Name:         sysProfileID,
			ID:           sysProfileID,
			ARN:          sysProfileARN,
			Type:         types.InferenceProfileTypeSystemDefined,
			BaseModelARN: "arn:aws:bedrock:us-east-1::foundation-model/anthropic.claude-sonnet-4-20250514",
		}},
	}
}

func TestCreateAIP(t *testing.T) {
	fake := fakeWithBaseProfile()
	withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		Name:            "alice-sonnet",
		TagsJSON:        `{"Team": "A", "DeveloperId": "B"}`,
		Base:            sysProfileID,
	})
	require.NoError(t, err)

	require.Equal(t, 1, fake.CreateCalls)
	require.NotNil(t, fake.LastCreateInput)
	assert.Equal(t, "alice-sonnet", aws.ToString(fake.LastCreateInput.InferenceProfileName))

	applied := map[string]string{}
	for _, tag := range fake.LastCreateInput.Tags {
		applied[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	assert.Equal(t, map[string]string{"Team": "A", "DeveloperId": "B"}, applied)
}

func TestCreateAIP_BaseARNPassesThrough(t *testing.T) {
	fake := fakeWithBaseProfile()
	withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		Name:            "alice-sonnet",
		TagsJSON:        `{"Team": "A"}`,
		Base:            sysProfileARN,
	})
	require.NoError(t, err)

	src, ok := fake.LastCreateInput.ModelSource.(*types.InferenceProfileModelSourceMemberCopyFrom)
	require.True(t, ok)
	assert.Equal(t, sysProfileARN, src.Value)
}

func TestCreateAIP_SingleBaseCandidateUsedWithoutPrompt(t *testing.T) {
	fake := fakeWithBaseProfile()
	withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		Name:            "alice-sonnet",
		TagsJSON:        `{"Team": "A"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CreateCalls)
}

func TestCreateAIP_MissingName(t *testing.T) {
	fake := fakeWithBaseProfile()
	_, sessions := withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		TagsJSON:        `{"Team": "A"}`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
	assert.Zero(t, *sessions, "validation failures must not open a provider session")
}

func TestCreateAIP_InvalidTags(t *testing.T) {
	fake := fakeWithBaseProfile()
	_, sessions := withFakeSession(t, fake)

	cases := []string{``, `{}`, `not json`, `{"Team": 1}`, `["a"]`}
	for _, tagsJSON := range cases {
		err := CreateAIP(context.Background(), CreateAIPOptions{
			ConnectionFlags: hermeticFlags(t),
			Name:            "alice-sonnet",
			TagsJSON:        tagsJSON,
		})
		require.Error(t, err, "tags %q should be rejected", tagsJSON)
		assert.Contains(t, err.Error(), "validation")
	}
	assert.Zero(t, *sessions)
	assert.Zero(t, fake.TotalCalls())
}

func TestCreateAIP_Conflict(t *testing.T) {
	fake := fakeWithBaseProfile()
	fake.Profiles = append(fake.Profiles, fakes.FakeProfile{
		Name: "alice-sonnet",
		ARN:  "arn:aws:bedrock:us-east-1:000000000000:application-inference-profile/alice-sonnet",
		Type: types.InferenceProfileTypeApplication,
		Tags: map[string]string{"Team": "A"},
	})
	withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		Name:            "alice-sonnet",
		TagsJSON:        `{"Team": "A"}`,
		Base:            sysProfileID,
	})
	require.Error(t, err)
	assert.True(t, provisioner.IsConflict(err))
	assert.Zero(t, fake.CreateCalls)
}

func TestCreateAIP_AccessDeniedSurfacesOnce(t *testing.T) {
	fake := fakeWithBaseProfile()
	fake.CreateErr = &types.AccessDeniedException{Message: aws.String("not authorized")}
	withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		Name:            "alice-sonnet",
		TagsJSON:        `{"Team": "A"}`,
		Base:            sysProfileID,
	})
	require.Error(t, err)
	assert.True(t, provisioner.IsAuthorization(err))
	assert.Equal(t, 1, fake.CreateCalls, "authorization faults must not be retried")
}

func TestCreateAIP_UnknownBaseID(t *testing.T) {
	fake := fakeWithBaseProfile()
	withFakeSession(t, fake)

	err := CreateAIP(context.Background(), CreateAIPOptions{
		ConnectionFlags: hermeticFlags(t),
		Name:            "alice-sonnet",
		TagsJSON:        `{"Team": "A"}`,
		Base:            "us.anthropic.claude-nonexistent-v1:0",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Zero(t, fake.CreateCalls)
}
