package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/harunoki/petnavi-services/api/internal/public/application"
	"github.com/harunoki/petnavi-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BusinessRepository implements application.BusinessRepository using MongoDB.
type BusinessRepository struct {
	collection *mongo.Collection
}

// NewBusinessRepository creates a new Mongo-backed business repository.
func NewBusinessRepository(db *mongo.Database, collectionName string) *BusinessRepository {
	return &BusinessRepository{collection: db.Collection(collectionName)}
}

// Find はフィルタを Mongo クエリへ落とし込み、候補となるビジネス一覧を返す。
// 近接条件は $centerSphere による粗い事前絞り込みであり、正確な距離順序は
// 上位のランカーが担う。
func (r *BusinessRepository) Find(ctx context.Context, filter application.SearchFilters) ([]domain.Business, error) {
	cursor, err := r.collection.Find(ctx, buildBusinessFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	businesses := make([]domain.Business, 0)
	for cursor.Next(ctx) {
		var doc BusinessDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		businesses = append(businesses, mapBusinessDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return businesses, nil
}

// Count は Find と同一の述語で全件数を数える。ページの hasMore 判定に使う。
func (r *BusinessRepository) Count(ctx context.Context, filter application.SearchFilters) (int64, error) {
	return r.collection.CountDocuments(ctx, buildBusinessFilter(filter))
}

// FindByID returns a single business by its identifier.
func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: business %s", application.ErrNotFound, id)
	}
	var doc BusinessDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: business %s", application.ErrNotFound, id)
		}
		return nil, err
	}
	business := mapBusinessDocument(doc)
	return &business, nil
}

// buildBusinessFilter は SearchFilters の各述語を AND 結合した bson.M を構築する。
func buildBusinessFilter(filter application.SearchFilters) bson.M {
	mongoFilter := bson.M{}
	if filter.ServiceType != "" {
		mongoFilter["serviceType"] = strings.TrimSpace(filter.ServiceType)
	}
	if filter.IsOpen != nil {
		mongoFilter["isOpen"] = *filter.IsOpen
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		mongoFilter["name"] = pattern
	}
	if filter.Center != nil && filter.RadiusKm != nil {
		mongoFilter["location"] = bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{filter.Center.Longitude, filter.Center.Latitude},
					*filter.RadiusKm / domain.EarthRadiusKm,
				},
			},
		}
	}
	return mongoFilter
}

// mapBusinessDocument は Mongo ドキュメントを公開ドメイン Business へマッピングする。
func mapBusinessDocument(doc BusinessDocument) domain.Business {
	point := domain.Point{}
	if len(doc.Location.Coordinates) == 2 {
		point.Longitude = doc.Location.Coordinates[0]
		point.Latitude = doc.Location.Coordinates[1]
	}

	return domain.Business{
		ID:          doc.ID.Hex(),
		OwnerID:     doc.OwnerID,
		Name:        doc.Name,
		ServiceType: doc.ServiceType,
		Location: domain.Location{
			Address:     doc.Address,
			Coordinates: point,
		},
		IsOpen: doc.IsOpen,
		Stats: domain.BusinessStats{
			Rating:         doc.Stats.Rating,
			ReviewCount:    doc.Stats.ReviewCount,
			LastReviewedAt: doc.Stats.LastReviewedAt,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
