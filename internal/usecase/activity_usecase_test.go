package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_ListAndPrune(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= 7; i++ {
		recordActivity(ctx, f.logs, fmt.Sprintf("entry %d", i), "", "")
	}

	uc := NewActivityUseCase(f.logs, 5)
	page, total, err := uc.List(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, page, 3)
	assert.Equal(t, "entry 7", page[0].Action)
	assert.Equal(t, "SYSTEM", page[0].User)

	require.NoError(t, uc.Prune(ctx))
	_, total, err = uc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	require.NoError(t, NewActivityUseCase(f.logs, 0).Prune(ctx))
}
