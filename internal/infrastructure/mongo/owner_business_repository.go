package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ownerapp "github.com/harunoki/petnavi-services/api/internal/owner/application"
	ownerdomain "github.com/harunoki/petnavi-services/api/internal/owner/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OwnerBusinessRepository はオーナーによるリスティング管理を MongoDB 経由で扱うリポジトリ。
type OwnerBusinessRepository struct {
	businesses *mongo.Collection
	reviews    *mongo.Collection
}

// NewOwnerBusinessRepository はビジネス・レビューの 2 コレクションを束縛したリポジトリを生成する。
func NewOwnerBusinessRepository(db *mongo.Database, businessCollection, reviewCollection string) *OwnerBusinessRepository {
	return &OwnerBusinessRepository{
		businesses: db.Collection(businessCollection),
		reviews:    db.Collection(reviewCollection),
	}
}

// EnsureIndexes は近接検索用の 2dsphere インデックスとレビュー逆引き用インデックスを保証する。
// 起動時に一度呼び出す。
func (r *OwnerBusinessRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return err
	}
	_, err = r.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "businessId", Value: 1}},
	})
	return err
}

// FindByID はビジネス ID を ObjectID 化して単一エンティティを復元する。
func (r *OwnerBusinessRepository) FindByID(ctx context.Context, id string) (*ownerdomain.Business, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: business %s", ownerapp.ErrNotFound, id)
	}
	var doc BusinessDocument
	if err := r.businesses.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: business %s", ownerapp.ErrNotFound, id)
		}
		return nil, err
	}
	business, err := mapOwnerBusinessDocument(doc)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Create はドメインエンティティを Mongo ドキュメントへ変換して新規登録する。
// 統計値はゼロで初期化され、以後はレビュー集計の単独ライターだけが書き換える。
func (r *OwnerBusinessRepository) Create(ctx context.Context, business *ownerdomain.Business) error {
	if business == nil {
		return errors.New("business payload is nil")
	}
	doc := mapOwnerBusinessToDocument(business)
	doc.ID = primitive.NewObjectID()
	if _, err := r.businesses.InsertOne(ctx, doc); err != nil {
		return err
	}
	business.ID = doc.ID.Hex()
	return nil
}

// Update はリスティング項目のみを差し替える。stats には一切触れない。
func (r *OwnerBusinessRepository) Update(ctx context.Context, business *ownerdomain.Business) error {
	if business == nil {
		return errors.New("business payload is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(business.ID))
	if err != nil {
		return fmt.Errorf("%w: business %s", ownerapp.ErrNotFound, business.ID)
	}

	doc := mapOwnerBusinessToDocument(business)
	update := bson.M{"$set": bson.M{
		"name":        doc.Name,
		"serviceType": doc.ServiceType,
		"address":     doc.Address,
		"location":    doc.Location,
		"isOpen":      doc.IsOpen,
		"updatedAt":   time.Now().UTC(),
	}}
	result, err := r.businesses.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: business %s", ownerapp.ErrNotFound, business.ID)
	}
	return nil
}

// Delete はリスティング本体と配下のレビューをまとめて削除する。
// 2 文書間のトランザクションは張らず、先にビジネスを消すことで
// 以後の再計算が必ずノーオペに落ちるようにしている。
func (r *OwnerBusinessRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%w: business %s", ownerapp.ErrNotFound, id)
	}
	result, err := r.businesses.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: business %s", ownerapp.ErrNotFound, id)
	}
	_, err = r.reviews.DeleteMany(ctx, bson.M{"businessId": objectID})
	return err
}

// mapOwnerBusinessDocument は Mongo ドキュメントを値オブジェクト検証を通して
// オーナードメイン Business へ復元する。
func mapOwnerBusinessDocument(doc BusinessDocument) (ownerdomain.Business, error) {
	name, err := ownerdomain.NewBusinessName(doc.Name)
	if err != nil {
		return ownerdomain.Business{}, err
	}
	serviceType, err := ownerdomain.NewServiceType(doc.ServiceType)
	if err != nil {
		return ownerdomain.Business{}, err
	}
	address, err := ownerdomain.NewAddress(doc.Address)
	if err != nil {
		return ownerdomain.Business{}, err
	}

	longitude, latitude := 0.0, 0.0
	if len(doc.Location.Coordinates) == 2 {
		longitude = doc.Location.Coordinates[0]
		latitude = doc.Location.Coordinates[1]
	}
	coordinates, err := ownerdomain.NewCoordinates(longitude, latitude)
	if err != nil {
		return ownerdomain.Business{}, err
	}

	return ownerdomain.Business{
		ID:          doc.ID.Hex(),
		OwnerID:     doc.OwnerID,
		Name:        name,
		ServiceType: serviceType,
		Address:     address,
		Coordinates: coordinates,
		IsOpen:      doc.IsOpen,
		Rating:      doc.Stats.Rating,
		ReviewCount: doc.Stats.ReviewCount,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

// mapOwnerBusinessToDocument はドメイン Business を Mongo 保存形式に射影する。
func mapOwnerBusinessToDocument(business *ownerdomain.Business) BusinessDocument {
	createdAt := business.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := business.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return BusinessDocument{
		OwnerID:     business.OwnerID,
		Name:        business.Name.String(),
		ServiceType: business.ServiceType.String(),
		Address:     business.Address.String(),
		Location:    newGeoPoint(business.Coordinates.Longitude(), business.Coordinates.Latitude()),
		IsOpen:      business.IsOpen,
		Stats: BusinessStatsDocument{
			Rating:      business.Rating,
			ReviewCount: business.ReviewCount,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
