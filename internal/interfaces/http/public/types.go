package public

import (
	"time"

	publicdomain "github.com/harunoki/petnavi-services/api/internal/public/domain"
)

type businessSummaryResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ServiceType string   `json:"serviceType"`
	Address     string   `json:"address,omitempty"`
	Longitude   float64  `json:"longitude"`
	Latitude    float64  `json:"latitude"`
	IsOpen      bool     `json:"isOpen"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	DistanceKm  *float64 `json:"distanceKm,omitempty"`
}

type businessDetailResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	ServiceType    string     `json:"serviceType"`
	Address        string     `json:"address,omitempty"`
	Longitude      float64    `json:"longitude"`
	Latitude       float64    `json:"latitude"`
	IsOpen         bool       `json:"isOpen"`
	Rating         float64    `json:"rating"`
	ReviewCount    int        `json:"reviewCount"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type paginationResponse struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type businessSearchResponse struct {
	Results    []businessSummaryResponse `json:"results"`
	Pagination paginationResponse        `json:"pagination"`
}

type reviewResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	UserID     string `json:"userId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type businessAggregateResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

type reviewMutationResponse struct {
	Status   string                     `json:"status"`
	Review   *reviewResponse            `json:"review,omitempty"`
	Business *businessAggregateResponse `json:"business,omitempty"`
}

// buildBusinessSummaryResponse は検索結果 1 件を一覧表示用 DTO に変換する。
func buildBusinessSummaryResponse(result publicdomain.SearchResult) businessSummaryResponse {
	business := result.Business
	return businessSummaryResponse{
		ID:          business.ID,
		Name:        business.Name,
		ServiceType: business.ServiceType,
		Address:     business.Location.Address,
		Longitude:   business.Location.Coordinates.Longitude,
		Latitude:    business.Location.Coordinates.Latitude,
		IsOpen:      business.IsOpen,
		Rating:      business.Stats.Rating,
		ReviewCount: business.Stats.ReviewCount,
		DistanceKm:  result.DistanceKm,
	}
}

// buildBusinessDetailResponse は Business ドメインモデルを詳細表示用 DTO に変換する。
func buildBusinessDetailResponse(business publicdomain.Business) businessDetailResponse {
	var createdAt, updatedAt *time.Time
	if !business.CreatedAt.IsZero() {
		t := business.CreatedAt
		createdAt = &t
	}
	if !business.UpdatedAt.IsZero() {
		t := business.UpdatedAt
		updatedAt = &t
	}

	return businessDetailResponse{
		ID:             business.ID,
		Name:           business.Name,
		ServiceType:    business.ServiceType,
		Address:        business.Location.Address,
		Longitude:      business.Location.Coordinates.Longitude,
		Latitude:       business.Location.Coordinates.Latitude,
		IsOpen:         business.IsOpen,
		Rating:         business.Stats.Rating,
		ReviewCount:    business.Stats.ReviewCount,
		LastReviewedAt: business.Stats.LastReviewedAt,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func buildReviewResponse(review publicdomain.Review) reviewResponse {
	return reviewResponse{
		ID:         review.ID,
		BusinessID: review.BusinessID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  review.UpdatedAt.Format(time.RFC3339),
	}
}

func buildBusinessAggregateResponse(summary *publicdomain.BusinessSummary) *businessAggregateResponse {
	if summary == nil {
		return nil
	}
	return &businessAggregateResponse{
		ID:          summary.ID,
		Name:        summary.Name,
		Rating:      summary.Rating,
		ReviewCount: summary.ReviewCount,
	}
}
