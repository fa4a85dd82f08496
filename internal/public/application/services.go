package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/harunoki/petnavi-services/api/internal/public/domain"
)

// BusinessRepository abstracts read access to businesses.
// BusinessRepository は Public コンテキストで店舗リスティングを読み取るためのポート。
type BusinessRepository interface {
	Find(ctx context.Context, filter SearchFilters) ([]domain.Business, error)
	Count(ctx context.Context, filter SearchFilters) (int64, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
}

// ReviewRepository handles review reads/writes and the derived business aggregate.
// RecalculateBusinessStats は対象ビジネスが存在しない場合 (nil, nil) を返しノーオペとする。
type ReviewRepository interface {
	FindByBusiness(ctx context.Context, businessID string) ([]domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	RecalculateBusinessStats(ctx context.Context, businessID string) (*domain.BusinessSummary, error)
}

// SearchFilters enumerates every recognized search option.
// 未知の組み合わせは黙殺せず Validate で明示的に拒否する。
type SearchFilters struct {
	ServiceType string
	IsOpen      *bool
	Search      string
	Center      *domain.Point
	RadiusKm    *float64
}

// Validate rejects inconsistent filter combinations.
func (f SearchFilters) Validate() error {
	if (f.Center == nil) != (f.RadiusKm == nil) {
		return fmt.Errorf("%w: center and radiusKm must be supplied together", ErrInvalidQuery)
	}
	if f.RadiusKm != nil && *f.RadiusKm <= 0 {
		return fmt.Errorf("%w: radiusKm must be positive", ErrInvalidQuery)
	}
	if f.Center != nil {
		if !domain.ValidLongitude(f.Center.Longitude) || !domain.ValidLatitude(f.Center.Latitude) {
			return fmt.Errorf("%w: center coordinates out of range", ErrInvalidQuery)
		}
	}
	return nil
}

// Paging controls offset pagination.
type Paging struct {
	Offset int
	Limit  int
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Normalized clamps paging values to the supported window.
func (p Paging) Normalized() Paging {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

// SearchPage is the paginated search envelope.
type SearchPage struct {
	Results []domain.SearchResult
	Total   int64
	Offset  int
	Limit   int
	HasMore bool
}

// BusinessQueryService describes the read use-cases for listings.
// BusinessQueryService は検索・詳細参照ユースケースを提供するリーダーモデル。
type BusinessQueryService interface {
	Search(ctx context.Context, filter SearchFilters, paging Paging) (*SearchPage, error)
	Detail(ctx context.Context, id string) (*domain.Business, error)
}

// ReviewQueryService describes review read use-cases.
type ReviewQueryService interface {
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Review, error)
}

// ReviewCommandService handles review mutations. Every mutation triggers a
// synchronous aggregate recomputation before the result is returned.
type ReviewCommandService interface {
	Create(ctx context.Context, cmd CreateReviewCommand) (*ReviewMutationResult, error)
	Update(ctx context.Context, reviewID, userID string, cmd UpdateReviewCommand) (*ReviewMutationResult, error)
	Delete(ctx context.Context, reviewID, userID string) (*domain.BusinessSummary, error)
}

// CreateReviewCommand captures a new review submission.
type CreateReviewCommand struct {
	BusinessID string
	UserID     string
	Rating     int
	Comment    string
}

// UpdateReviewCommand is a partial patch. nil フィールドは変更なしを意味する。
type UpdateReviewCommand struct {
	Rating  *int
	Comment *string
}

// ReviewMutationResult pairs the mutated review with the fresh business aggregate.
// Business is nil when the parent listing was deleted concurrently.
type ReviewMutationResult struct {
	Review   domain.Review
	Business *domain.BusinessSummary
}

func normalizeComment(comment string) string {
	return strings.TrimSpace(comment)
}
