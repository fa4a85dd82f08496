package application

import (
	"context"

	"github.com/harunoki/petnavi-services/api/internal/public/domain"
)

// businessQueryService is the concrete implementation of BusinessQueryService.
type businessQueryService struct {
	repo BusinessRepository
}

// NewBusinessQueryService creates a new business query service.
func NewBusinessQueryService(repo BusinessRepository) BusinessQueryService {
	return &businessQueryService{repo: repo}
}

// Search はフィルタ検証 → カウント → 候補取得 → 距離ランキング → ページングの順に
// 検索ユースケースを編成する。件数ゼロはエラーではなく空ページとして返す。
func (s *businessQueryService) Search(ctx context.Context, filter SearchFilters, paging Paging) (*SearchPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	paging = paging.Normalized()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &SearchPage{
		Results: []domain.SearchResult{},
		Total:   total,
		Offset:  paging.Offset,
		Limit:   paging.Limit,
	}
	if total == 0 {
		return page, nil
	}

	candidates, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked := domain.RankByDistance(candidates, filter.Center)
	page.Results, page.HasMore = domain.Page(ranked, total, paging.Offset, paging.Limit)
	return page, nil
}

func (s *businessQueryService) Detail(ctx context.Context, id string) (*domain.Business, error) {
	return s.repo.FindByID(ctx, id)
}
