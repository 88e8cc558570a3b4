package bedrock

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTS struct {
	out   *sts.GetCallerIdentityOutput
	err   error
	calls int
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	return f.out, f.err
}

func TestWhoAmI(t *testing.T) {
	fake := &fakeSTS{
		out: &sts.GetCallerIdentityOutput{
			Account: aws.String("123456789012"),
			Arn:     aws.String("arn:aws:sts::123456789012:assumed-role/Developers/alice"),
			UserId:  aws.String("AROAEXAMPLE:alice"),
		},
	}

	id, err := WhoAmI(context.Background(), fake)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", id.Account)
	assert.Equal(t, "arn:aws:sts::123456789012:assumed-role/Developers/alice", id.ARN)
	assert.Equal(t, 1, fake.calls)
}

func TestWhoAmI_Error(t *testing.T) {
	fake := &fakeSTS{err: errors.New("expired token")}

	_, err := WhoAmI(context.Background(), fake)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller identity")
}
