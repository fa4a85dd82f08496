package application

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunoki/petnavi-services/api/internal/public/domain"
)

func newReviewFixture() (*fakeBusinessRepository, *fakeReviewRepository, ReviewCommandService) {
	businesses := &fakeBusinessRepository{businesses: []domain.Business{listing("biz-1", 139.7, 35.6)}}
	reviews := newFakeReviewRepository(businesses)
	service := NewReviewCommandService(reviews, businesses, log.New(io.Discard, "", 0))
	return businesses, reviews, service
}

func TestCreateReviewRecomputesAggregate(t *testing.T) {
	businesses, reviews, service := newReviewFixture()

	ratings := []int{4, 5, 3}
	var result *ReviewMutationResult
	var err error
	for i, rating := range ratings {
		result, err = service.Create(context.Background(), CreateReviewCommand{
			BusinessID: "biz-1",
			UserID:     "user-" + string(rune('a'+i)),
			Rating:     rating,
			Comment:    "  よかったです  ",
		})
		require.NoError(t, err)
	}

	require.NotNil(t, result.Business)
	assert.Equal(t, 4.0, result.Business.Rating)
	assert.Equal(t, 3, result.Business.ReviewCount)
	assert.Equal(t, "よかったです", result.Review.Comment)
	assert.Len(t, reviews.recomputed, 3)
	assert.Equal(t, 4.0, businesses.businesses[0].Stats.Rating)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	_, reviews, service := newReviewFixture()

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Create(context.Background(), CreateReviewCommand{
			BusinessID: "biz-1",
			UserID:     "user-a",
			Rating:     rating,
		})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	}
	assert.Empty(t, reviews.recomputed)
}

func TestCreateReviewMissingBusiness(t *testing.T) {
	_, reviews, service := newReviewFixture()

	_, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "missing",
		UserID:     "user-a",
		Rating:     5,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, reviews.reviews)
}

func TestUpdateReviewAuthorOnly(t *testing.T) {
	_, reviews, service := newReviewFixture()

	created, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 5, Comment: "最高",
	})
	require.NoError(t, err)

	recomputesBefore := len(reviews.recomputed)
	newRating := 1
	_, err = service.Update(context.Background(), created.Review.ID, "someone-else", UpdateReviewCommand{Rating: &newRating})
	assert.ErrorIs(t, err, ErrForbidden)
	// 拒否された変異は集計を動かさない。
	assert.Len(t, reviews.recomputed, recomputesBefore)

	result, err := service.Update(context.Background(), created.Review.ID, "author", UpdateReviewCommand{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Review.Rating)
	assert.Equal(t, "最高", result.Review.Comment)
	require.NotNil(t, result.Business)
	assert.Equal(t, 1.0, result.Business.Rating)
}

func TestUpdateReviewPartialPatch(t *testing.T) {
	_, _, service := newReviewFixture()

	created, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 4, Comment: "普通",
	})
	require.NoError(t, err)

	comment := "  とても親切でした  "
	result, err := service.Update(context.Background(), created.Review.ID, "author", UpdateReviewCommand{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Review.Rating)
	assert.Equal(t, "とても親切でした", result.Review.Comment)
}

func TestUpdateReviewInvalidRating(t *testing.T) {
	_, _, service := newReviewFixture()

	created, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 4,
	})
	require.NoError(t, err)

	bad := 9
	_, err = service.Update(context.Background(), created.Review.ID, "author", UpdateReviewCommand{Rating: &bad})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestDeleteReviewResetsAggregate(t *testing.T) {
	businesses, _, service := newReviewFixture()

	created, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, businesses.businesses[0].Stats.ReviewCount)

	summary, err := service.Delete(context.Background(), created.Review.ID, "author")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 0.0, summary.Rating)
	assert.Equal(t, 0, summary.ReviewCount)
}

func TestDeleteReviewAuthorOnly(t *testing.T) {
	_, reviews, service := newReviewFixture()

	created, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 5,
	})
	require.NoError(t, err)

	_, err = service.Delete(context.Background(), created.Review.ID, "intruder")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, reviews.reviews, created.Review.ID)
}

func TestRecomputeFailureDoesNotRollBackWrite(t *testing.T) {
	_, reviews, service := newReviewFixture()
	reviews.recomputeErr = errors.New("mongo down")

	result, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 4,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Business)
	assert.Len(t, reviews.reviews, 1)
}

func TestRecomputeOnDeletedBusinessIsNoOp(t *testing.T) {
	businesses, _, service := newReviewFixture()

	created, err := service.Create(context.Background(), CreateReviewCommand{
		BusinessID: "biz-1", UserID: "author", Rating: 4,
	})
	require.NoError(t, err)

	// 並行してリスティングが消えた状況を再現する。
	businesses.businesses = nil

	newRating := 2
	result, err := service.Update(context.Background(), created.Review.ID, "author", UpdateReviewCommand{Rating: &newRating})
	require.NoError(t, err)
	assert.Nil(t, result.Business)
}

func TestListByBusiness(t *testing.T) {
	businesses := &fakeBusinessRepository{businesses: []domain.Business{listing("biz-1", 139.7, 35.6)}}
	reviews := newFakeReviewRepository(businesses)
	commands := NewReviewCommandService(reviews, businesses, log.New(io.Discard, "", 0))
	queries := NewReviewQueryService(reviews)

	_, err := commands.Create(context.Background(), CreateReviewCommand{BusinessID: "biz-1", UserID: "u1", Rating: 5})
	require.NoError(t, err)
	_, err = commands.Create(context.Background(), CreateReviewCommand{BusinessID: "biz-1", UserID: "u2", Rating: 3})
	require.NoError(t, err)

	list, err := queries.ListByBusiness(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = queries.ListByBusiness(context.Background(), "other")
	require.NoError(t, err)
	assert.Empty(t, list)
}
