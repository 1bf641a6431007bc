package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/pkg/errors"
)

func TestReview_AppendOnlyWithFlags(t *testing.T) {
	f := newFixture(t)
	uc := NewReviewUseCase(f.reviews, f.services, f.logs)
	ctx := context.Background()

	review, err := uc.CreateReview(ctx, "user_1", CreateReviewInput{ServiceID: "t1", CustomerName: "John Doe", Rating: 5, Comment: "My son loves maths now"})
	require.NoError(t, err)
	assert.Equal(t, "Expert Tutoring", review.ServiceTitle)
	assert.False(t, review.IsVerified)
	assert.False(t, review.IsFeatured)
	assert.Equal(t, "New review added for Expert Tutoring", f.lastLog(t))

	flagged, err := uc.SetFlags(ctx, Actor{Admin: true}, review.ID, true, true)
	require.NoError(t, err)
	assert.True(t, flagged.IsVerified)
	assert.True(t, flagged.IsFeatured)

	_, err = uc.CreateReview(ctx, "user_1", CreateReviewInput{ServiceID: "t1", Rating: 6, Comment: "!"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestReview_ListPagesNewestFirst(t *testing.T) {
	f := newFixture(t)
	uc := NewReviewUseCase(f.reviews, f.services, f.logs)
	ctx := context.Background()

	var ids []string
	for i := 1; i <= 5; i++ {
		r, err := uc.CreateReview(ctx, "", CreateReviewInput{ServiceID: "c1", Rating: 4, Comment: fmt.Sprintf("visit %d", i)})
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}
	_, err := uc.SetFlags(ctx, Actor{Admin: true}, ids[1], false, true)
	require.NoError(t, err)

	page, total, err := uc.ListReviews(ctx, false, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID)
	assert.Equal(t, "Anonymous", page[0].CustomerName)

	last, _, err := uc.ListReviews(ctx, false, 3, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, ids[0], last[0].ID)

	beyond, _, err := uc.ListReviews(ctx, false, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	featured, total, err := uc.ListReviews(ctx, true, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, ids[1], featured[0].ID)
}
