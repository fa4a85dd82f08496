package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/harunoki/petnavi-services/api/internal/public/domain"
)

// fakeBusinessRepository はインメモリの読み取り専用フェイク。
type fakeBusinessRepository struct {
	businesses []domain.Business
	findErr    error
	countErr   error
}

func (f *fakeBusinessRepository) Find(_ context.Context, _ SearchFilters) ([]domain.Business, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]domain.Business, len(f.businesses))
	copy(out, f.businesses)
	return out, nil
}

func (f *fakeBusinessRepository) Count(_ context.Context, _ SearchFilters) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.businesses)), nil
}

func (f *fakeBusinessRepository) FindByID(_ context.Context, id string) (*domain.Business, error) {
	for i := range f.businesses {
		if f.businesses[i].ID == id {
			b := f.businesses[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("%w: business %s", ErrNotFound, id)
}

// fakeReviewRepository はレビューの保存と集計再計算を模倣する。
// 集計はフェイク内でも全件走査の再計算として実装し、本番実装の意味論に合わせる。
type fakeReviewRepository struct {
	reviews      map[string]*domain.Review
	businesses   *fakeBusinessRepository
	nextID       int
	recomputed   []string
	recomputeErr error
}

func newFakeReviewRepository(businesses *fakeBusinessRepository) *fakeReviewRepository {
	return &fakeReviewRepository{
		reviews:    map[string]*domain.Review{},
		businesses: businesses,
		nextID:     1,
	}
}

func (f *fakeReviewRepository) FindByBusiness(_ context.Context, businessID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.BusinessID == businessID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepository) FindByID(_ context.Context, id string) (*domain.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepository) Create(_ context.Context, review *domain.Review) error {
	review.ID = "review-" + strconv.Itoa(f.nextID)
	f.nextID++
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepository) Update(_ context.Context, review *domain.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return fmt.Errorf("%w: review %s", ErrNotFound, review.ID)
	}
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepository) RecalculateBusinessStats(ctx context.Context, businessID string) (*domain.BusinessSummary, error) {
	f.recomputed = append(f.recomputed, businessID)
	if f.recomputeErr != nil {
		return nil, f.recomputeErr
	}

	var target *domain.Business
	for i := range f.businesses.businesses {
		if f.businesses.businesses[i].ID == businessID {
			target = &f.businesses.businesses[i]
			break
		}
	}
	if target == nil {
		return nil, nil
	}

	sum := 0
	count := 0
	for _, r := range f.reviews {
		if r.BusinessID == businessID {
			sum += r.Rating
			count++
		}
	}

	if count == 0 {
		target.Stats = domain.BusinessStats{}
	} else {
		target.Stats.Rating = domain.Round2(float64(sum) / float64(count))
		target.Stats.ReviewCount = count
	}

	summary := target.Summary()
	return &summary, nil
}
