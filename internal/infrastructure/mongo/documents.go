package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPointDocument は GeoJSON Point の埋め込み表現。coordinates は [lng, lat] 順。
type GeoPointDocument struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// BusinessStatsDocument はビジネスドキュメント内の stats 埋め込み構造を表す。
type BusinessStatsDocument struct {
	Rating         float64    `bson:"rating"`
	ReviewCount    int        `bson:"reviewCount"`
	LastReviewedAt *time.Time `bson:"lastReviewedAt,omitempty"`
}

// BusinessDocument は MongoDB 上でのビジネススキーマを Go 構造体として表現したもの。
type BusinessDocument struct {
	ID          primitive.ObjectID    `bson:"_id"`
	OwnerID     string                `bson:"ownerId"`
	Name        string                `bson:"name"`
	ServiceType string                `bson:"serviceType"`
	Address     string                `bson:"address,omitempty"`
	Location    GeoPointDocument      `bson:"location"`
	IsOpen      bool                  `bson:"isOpen"`
	Stats       BusinessStatsDocument `bson:"stats"`
	CreatedAt   time.Time             `bson:"createdAt"`
	UpdatedAt   time.Time             `bson:"updatedAt"`
}

// ReviewDocument は公開・オーナーいずれのユースケースでも利用するレビューのスキーマを表現する。
type ReviewDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	BusinessID primitive.ObjectID `bson:"businessId"`
	UserID     string             `bson:"userId"`
	Rating     int                `bson:"rating"`
	Comment    string             `bson:"comment"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

const geoPointType = "Point"

func newGeoPoint(longitude, latitude float64) GeoPointDocument {
	return GeoPointDocument{
		Type:        geoPointType,
		Coordinates: []float64{longitude, latitude},
	}
}
