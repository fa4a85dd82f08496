package domain

import "time"

// Review is a single user-authored rating for a business.
type Review struct {
	ID         string
	BusinessID string
	UserID     string
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RatingInRange reports whether a review rating sits inside the accepted 1〜5 band.
func RatingInRange(rating int) bool {
	return rating >= 1 && rating <= 5
}
