package domain

import "time"

// Business represents a publicly visible pet-service listing.
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	ServiceType string
	Location    Location
	IsOpen      bool
	Stats       BusinessStats
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location pairs a human-readable address with its coordinates.
type Location struct {
	Address     string
	Coordinates Point
}

// BusinessStats aggregates review metrics.
// Rating と ReviewCount は常に同時に更新される導出値であり、単独では書き換えない。
type BusinessStats struct {
	Rating         float64
	ReviewCount    int
	LastReviewedAt *time.Time
}

// BusinessSummary is the projection returned alongside review mutations.
type BusinessSummary struct {
	ID          string
	Name        string
	Rating      float64
	ReviewCount int
}

// Summary projects the business into its mutation-response form.
func (b Business) Summary() BusinessSummary {
	return BusinessSummary{
		ID:          b.ID,
		Name:        b.Name,
		Rating:      b.Stats.Rating,
		ReviewCount: b.Stats.ReviewCount,
	}
}
