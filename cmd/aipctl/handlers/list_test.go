package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	fake := fakeWithAppProfile()
	withFakeSession(t, fake)

	err := List(context.Background(), ListOptions{
		ConnectionFlags: hermeticFlags(t),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.ListCalls)
	assert.Equal(t, 1, fake.TagsCalls)
}

func TestList_JSONOutput(t *testing.T) {
	fake := fakeWithAppProfile()
	withFakeSession(t, fake)

	err := List(context.Background(), ListOptions{
		ConnectionFlags: hermeticFlags(t),
		JSONOutput:      true,
	})
	require.NoError(t, err)
}

func TestList_TagFilter(t *testing.T) {
	fake := fakeWithAppProfile()
	withFakeSession(t, fake)

	err := List(context.Background(), ListOptions{
		ConnectionFlags: hermeticFlags(t),
		TagsJSON:        `{"Team": "A"}`,
	})
	require.NoError(t, err)
}

func TestList_InvalidTagFilter(t *testing.T) {
	fake := fakeWithAppProfile()
	_, sessions := withFakeSession(t, fake)

	err := List(context.Background(), ListOptions{
		ConnectionFlags: hermeticFlags(t),
		TagsJSON:        `nope`,
	})
	require.Error(t, err)
	assert.Zero(t, *sessions)
}
