package committer

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplier struct {
	calls   int
	applied []*spanner.Mutation
	err     error
}

func (f *fakeApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	f.calls++
	f.applied = ms
	return time.Time{}, f.err
}

func TestCommitPlan_IgnoresNil(t *testing.T) {
	plan := NewPlan()
	plan.Add(nil)
	plan.AddMultiple([]*spanner.Mutation{
		spanner.Delete("products", spanner.AllKeys()),
		nil,
		spanner.Delete("inventory", spanner.AllKeys()),
	})

	assert.Equal(t, 2, plan.Count())
	assert.False(t, plan.IsEmpty())
}

func TestCommitter_EmptyPlanSkipsCommit(t *testing.T) {
	client := &fakeApplier{}

	require.NoError(t, NewCommitter(client).Apply(context.Background(), NewPlan()))
	assert.Zero(t, client.calls)
}

func TestCommitter_AppliesAllMutationsOnce(t *testing.T) {
	client := &fakeApplier{}
	plan := NewPlan()
	plan.Add(spanner.Delete("products", spanner.AllKeys()))
	plan.Add(spanner.Delete("inventory", spanner.AllKeys()))

	require.NoError(t, NewCommitter(client).Apply(context.Background(), plan))
	assert.Equal(t, 1, client.calls)
	assert.Len(t, client.applied, 2)
}

func TestCommitter_WrapsFailure(t *testing.T) {
	boom := errors.New("aborted")
	client := &fakeApplier{err: boom}
	plan := NewPlan()
	plan.Add(spanner.Delete("products", spanner.AllKeys()))

	err := NewCommitter(client).Apply(context.Background(), plan)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "1 mutations")
}
