package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harunoki/petnavi-services/api/internal/public/application"
	"github.com/harunoki/petnavi-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository はレビューの読み書きとビジネス統計の再計算を MongoDB で扱う実装リポジトリ。
type ReviewRepository struct {
	reviews    *mongo.Collection
	businesses *mongo.Collection
}

// NewReviewRepository はレビュー・ビジネスの 2 コレクションを束縛したリポジトリを構築する。
func NewReviewRepository(db *mongo.Database, reviewCollection, businessCollection string) *ReviewRepository {
	return &ReviewRepository{
		reviews:    db.Collection(reviewCollection),
		businesses: db.Collection(businessCollection),
	}
}

// FindByBusiness は対象ビジネスのレビューを新しい順に返す。
func (r *ReviewRepository) FindByBusiness(ctx context.Context, businessID string) ([]domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(businessID))
	if err != nil {
		return nil, fmt.Errorf("%w: business %s", application.ErrNotFound, businessID)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.reviews.Find(ctx, bson.M{"businessId": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	return reviews, cursor.Err()
}

// FindByID はレビュー ID から単一レビューを取得する。
func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: review %s", application.ErrNotFound, id)
	}
	var doc ReviewDocument
	if err := r.reviews.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: review %s", application.ErrNotFound, id)
		}
		return nil, err
	}
	review := mapReviewDocument(doc)
	return &review, nil
}

// Create はレビュー投稿を Mongo に追加し、採番結果をドメインモデルへ反映する。
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	businessID, err := primitive.ObjectIDFromHex(strings.TrimSpace(review.BusinessID))
	if err != nil {
		return fmt.Errorf("%w: business %s", application.ErrNotFound, review.BusinessID)
	}

	now := time.Now().UTC()
	createdAt := review.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := review.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := ReviewDocument{
		ID:         primitive.NewObjectID(),
		BusinessID: businessID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	if _, err := r.reviews.InsertOne(ctx, doc); err != nil {
		return err
	}

	review.ID = doc.ID.Hex()
	review.CreatedAt = doc.CreatedAt
	review.UpdatedAt = doc.UpdatedAt
	return nil
}

// Update は rating/comment/updatedAt のみを差し替える。集計値はここでは触らない。
func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(review.ID))
	if err != nil {
		return fmt.Errorf("%w: review %s", application.ErrNotFound, review.ID)
	}

	update := bson.M{"$set": bson.M{
		"rating":    review.Rating,
		"comment":   review.Comment,
		"updatedAt": review.UpdatedAt,
	}}
	result, err := r.reviews.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: review %s", application.ErrNotFound, review.ID)
	}
	return nil
}

// Delete removes a single review.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%w: review %s", application.ErrNotFound, id)
	}
	result, err := r.reviews.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: review %s", application.ErrNotFound, id)
	}
	return nil
}

// RecalculateBusinessStats は対象ビジネスのレビューを全件集計し、平均評価と件数を
// 1 回の更新で反映する。増分更新ではなく毎回の全件再計算とすることで、編集・削除が
// 絡んでもドリフトしない。ビジネスが並行して削除済みの場合はノーオペとして
// (nil, nil) を返す。
func (r *ReviewRepository) RecalculateBusinessStats(ctx context.Context, businessID string) (*domain.BusinessSummary, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(businessID))
	if err != nil {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"businessId": objectID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"reviewCount":    bson.M{"$sum": 1},
			"avgRating":      bson.M{"$avg": "$rating"},
			"lastReviewedAt": bson.M{"$max": "$createdAt"},
		}}},
	}

	cursor, err := r.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	update := bson.M{
		"stats.rating":         0.0,
		"stats.reviewCount":    0,
		"stats.lastReviewedAt": nil,
		"updatedAt":            time.Now().UTC(),
	}

	if cursor.Next(ctx) {
		var agg struct {
			ReviewCount    int        `bson:"reviewCount"`
			AvgRating      *float64   `bson:"avgRating"`
			LastReviewedAt *time.Time `bson:"lastReviewedAt"`
		}
		if err := cursor.Decode(&agg); err != nil {
			return nil, err
		}
		update["stats.reviewCount"] = agg.ReviewCount
		if agg.AvgRating != nil {
			update["stats.rating"] = domain.Round2(*agg.AvgRating)
		}
		update["stats.lastReviewedAt"] = agg.LastReviewedAt
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated BusinessDocument
	if err := r.businesses.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	summary := mapBusinessDocument(updated).Summary()
	return &summary, nil
}

// mapReviewDocument は Mongo レビュー文書を公開ドメイン Review へ変換する。
func mapReviewDocument(doc ReviewDocument) domain.Review {
	return domain.Review{
		ID:         doc.ID.Hex(),
		BusinessID: doc.BusinessID.Hex(),
		UserID:     doc.UserID,
		Rating:     doc.Rating,
		Comment:    doc.Comment,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
