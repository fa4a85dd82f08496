package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/harunoki/petnavi-services/api/internal/public/domain"
)

// reviewQueryService is the concrete implementation of ReviewQueryService.
type reviewQueryService struct {
	repo ReviewRepository
}

// NewReviewQueryService creates a new review query service.
func NewReviewQueryService(repo ReviewRepository) ReviewQueryService {
	return &reviewQueryService{repo: repo}
}

func (s *reviewQueryService) ListByBusiness(ctx context.Context, businessID string) ([]domain.Review, error) {
	return s.repo.FindByBusiness(ctx, businessID)
}

// reviewCommandService はレビュー変異とそれに続く集計再計算を編成する。
// 再計算の失敗はログに残すのみで、確定済みのレビュー書き込みは巻き戻さない。
type reviewCommandService struct {
	reviews    ReviewRepository
	businesses BusinessRepository
	logger     *log.Logger
}

// NewReviewCommandService creates a new review command service.
func NewReviewCommandService(reviews ReviewRepository, businesses BusinessRepository, logger *log.Logger) ReviewCommandService {
	return &reviewCommandService{reviews: reviews, businesses: businesses, logger: logger}
}

func (s *reviewCommandService) Create(ctx context.Context, cmd CreateReviewCommand) (*ReviewMutationResult, error) {
	if !domain.RatingInRange(cmd.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidQuery)
	}

	if _, err := s.businesses.FindByID(ctx, cmd.BusinessID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	review := domain.Review{
		BusinessID: cmd.BusinessID,
		UserID:     cmd.UserID,
		Rating:     cmd.Rating,
		Comment:    normalizeComment(cmd.Comment),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.reviews.Create(ctx, &review); err != nil {
		return nil, err
	}

	return &ReviewMutationResult{
		Review:   review,
		Business: s.recompute(ctx, cmd.BusinessID),
	}, nil
}

func (s *reviewCommandService) Update(ctx context.Context, reviewID, userID string, cmd UpdateReviewCommand) (*ReviewMutationResult, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}

	if cmd.Rating != nil {
		if !domain.RatingInRange(*cmd.Rating) {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidQuery)
		}
		review.Rating = *cmd.Rating
	}
	if cmd.Comment != nil {
		review.Comment = normalizeComment(*cmd.Comment)
	}
	review.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	return &ReviewMutationResult{
		Review:   *review,
		Business: s.recompute(ctx, review.BusinessID),
	}, nil
}

func (s *reviewCommandService) Delete(ctx context.Context, reviewID, userID string) (*domain.BusinessSummary, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return nil, err
	}

	return s.recompute(ctx, review.BusinessID), nil
}

// recompute は全件再計算を同期的に呼び出す。レビュー書き込みが正であり、
// 集計側の失敗は次回成功時に自己修復されるため、ここではエラーを伝播しない。
func (s *reviewCommandService) recompute(ctx context.Context, businessID string) *domain.BusinessSummary {
	summary, err := s.reviews.RecalculateBusinessStats(ctx, businessID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("ビジネス統計の再計算に失敗 businessId=%q err=%v", businessID, err)
		}
		return nil
	}
	return summary
}
