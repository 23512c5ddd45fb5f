package list_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/testutil"
)

func TestQuery_Filter(t *testing.T) {
	q := NewQuery(testutil.NewSeededReadModel(), nil)

	tests := []struct {
		name    string
		req     *Request
		wantMin string
		wantMax string
		empty   bool
	}{
		{name: "nil request", req: nil, empty: true},
		{name: "blank values are absent", req: &Request{Q: testutil.StrPtr("  "), Tag: testutil.StrPtr(""), Min: testutil.StrPtr(" ")}, empty: true},
		{name: "malformed bounds are ignored", req: &Request{Min: testutil.StrPtr("cheap"), Max: testutil.StrPtr("1/2")}, empty: true},
		{name: "bounds parsed", req: &Request{Min: testutil.StrPtr("10"), Max: testutil.StrPtr(" 49.5 ")}, wantMin: "10.00", wantMax: "49.50"},
		{name: "sub-cent bounds stay exact", req: &Request{Min: testutil.StrPtr("19.991"), Max: testutil.StrPtr("19.995")}, wantMin: "19.991", wantMax: "19.995"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := q.Filter(tt.req)

			require.NotNil(t, filter)
			assert.Equal(t, tt.empty, filter.IsEmpty())
			if tt.wantMin != "" {
				assert.Equal(t, tt.wantMin, filter.Min.Decimal())
			}
			if tt.wantMax != "" {
				assert.Equal(t, tt.wantMax, filter.Max.Decimal())
			}
		})
	}
}

func TestQuery_ExecuteTrimsText(t *testing.T) {
	rm := testutil.NewSeededReadModel()
	q := NewQuery(rm, nil)

	result, err := q.Execute(context.Background(), &Request{Q: testutil.StrPtr("  mouse ")})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "mouse", *rm.LastFilter.Query)
}

func TestQuery_Execute(t *testing.T) {
	q := NewQuery(testutil.NewSeededReadModel(), nil)

	all, err := q.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Count)
	assert.Len(t, all.Items, all.Count)

	bounded, err := q.Execute(context.Background(), &Request{Min: testutil.StrPtr("10"), Max: testutil.StrPtr("60")})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-101", "p-100"}, testutil.ProductIDs(bounded.Items))
	for _, p := range bounded.Items {
		assert.True(t, p.Price.Float64() >= 10 && p.Price.Float64() <= 60)
	}
}

func TestQuery_InvertedRangeIsEmptyNotError(t *testing.T) {
	q := NewQuery(testutil.NewSeededReadModel(), nil)

	result, err := q.Execute(context.Background(), &Request{Min: testutil.StrPtr("100"), Max: testutil.StrPtr("10")})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Items)
}

func TestQuery_PropagatesStoreErrors(t *testing.T) {
	rm := testutil.NewSeededReadModel()
	rm.FailWith(domain.ErrStoreUnavailable)
	q := NewQuery(rm, nil)

	_, err := q.Execute(context.Background(), &Request{})

	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}
