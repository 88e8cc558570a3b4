package handlers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/cloudeng/aipctl/internal/config"
	"github.com/cloudeng/aipctl/internal/provisioner"
	"github.com/cloudeng/aipctl/internal/provisioner/fakes"
	"github.com/cloudeng/aipctl/internal/retry"
)

type fakeSTS struct {
	err   error
	calls int
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/alice"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}, nil
}

// withFakeSession routes handler sessions to an in-memory provider and
// disables interactive prompting. It reports how often a session was
// opened, so tests can assert that validation failures never reach the
// provider.
func withFakeSession(t *testing.T, fake *fakes.FakeBedrock) (stsFake *fakeSTS, sessions *int) {
	t.Helper()

	stsFake = &fakeSTS{}
	count := 0

	origSession := newSession
	origTTY := stdoutIsTTY
	stdoutIsTTY = func() bool { return false }
	newSession = func(_ context.Context, cfg *config.Config) (*session, error) {
		count++
		return &session{
			cfg:    cfg,
			prov:   provisioner.New(fake, retry.WithMaxRetries(0)),
			sts:    stsFake,
			region: "us-east-1",
		}, nil
	}
	t.Cleanup(func() {
		newSession = origSession
		stdoutIsTTY = origTTY
	})
	return stsFake, &count
}

// hermeticFlags points the config loader at a nonexistent file so host
// state cannot leak into tests.
func hermeticFlags(t *testing.T) ConnectionFlags {
	t.Helper()
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	return ConnectionFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}
}
