package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
)

type recordingApplier struct {
	mutations []*spanner.Mutation
	err       error
}

func (r *recordingApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	r.mutations = append(r.mutations, ms...)
	return time.Time{}, r.err
}

func TestProductMutations(t *testing.T) {
	stock := int64(5)
	tracked := &domain.Product{ID: "p-1", SKU: "SKU-1", Title: "A", Price: domain.MustPrice(100), Stock: &stock}
	untracked := &domain.Product{ID: "p-2", SKU: "SKU-2", Title: "B", Price: domain.MustPrice(100)}

	assert.Len(t, ProductMutations(tracked), 2)
	assert.Len(t, ProductMutations(untracked), 2)
}

func TestWriteSpanner_SeedIsOneCommit(t *testing.T) {
	client := &recordingApplier{}

	err := WriteSpanner(context.Background(), committer.NewCommitter(client), SeedCatalog()...)

	require.NoError(t, err)
	assert.Len(t, client.mutations, 2*len(SeedCatalog()))
}

func TestWriteSpanner_Failure(t *testing.T) {
	client := &recordingApplier{err: errors.New("aborted")}

	err := WriteSpanner(context.Background(), committer.NewCommitter(client), SeedCatalog()...)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestWritePostgres(t *testing.T) {
	_, mock, pool := newTestReadModel(t)
	stock := int64(7)
	products := []*domain.Product{
		{ID: "p-1", SKU: "SKU-1", Title: "Tracked", Price: domain.MustPrice(1999), Tags: []string{"a"}, Stock: &stock},
		{ID: "p-2", SKU: "SKU-2", Title: "Untracked", Price: domain.MustPrice(500)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(upsertProductSQL).
		WithArgs("p-1", "SKU-1", "Tracked", nil, "19.99", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertInventorySQL).WithArgs("p-1", int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertProductSQL).
		WithArgs("p-2", "SKU-2", "Untracked", nil, "5.00", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteInventorySQL).WithArgs("p-2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, WritePostgres(context.Background(), pool, products...))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWritePostgres_RollsBackOnFailure(t *testing.T) {
	_, mock, pool := newTestReadModel(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertProductSQL).WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	err := WritePostgres(context.Background(), pool, SeedCatalog()[0])

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
