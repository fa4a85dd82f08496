package domain

import "time"

// Business aggregates the data an owner may manage on their own listing.
// Rating/ReviewCount はレビュー集計の単独ライターが導出する読み取り専用値で、
// オーナー操作では一切変更されない。
type Business struct {
	ID          string
	OwnerID     string
	Name        BusinessName
	ServiceType ServiceType
	Address     Address
	Coordinates Coordinates
	IsOpen      bool
	Rating      float64
	ReviewCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
