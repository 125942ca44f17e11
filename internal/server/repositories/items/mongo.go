package items

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the collection holding item documents.
const CollectionName = "clothingitems"

type itemDocument struct {
	ID        primitive.ObjectID   `bson:"_id"`
	Name      string               `bson:"name"`
	Weather   string               `bson:"weather"`
	ImageURL  string               `bson:"imageUrl"`
	Owner     primitive.ObjectID   `bson:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"createdAt"`
}

func (d *itemDocument) model() *models.ClothingItem {
	likes := make([]string, 0, len(d.Likes))
	for _, l := range d.Likes {
		likes = append(likes, l.Hex())
	}
	return &models.ClothingItem{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Weather:   models.Weather(d.Weather),
		ImageURL:  d.ImageURL,
		Owner:     d.Owner.Hex(),
		Likes:     likes,
		CreatedAt: d.CreatedAt,
	}
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// EnsureIndexes creates the index backing newest-first listing.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}
	return nil
}

func oids(ids ...string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		out = append(out, oid)
	}
	return out, nil
}

func (r *MongoRepository) Create(ctx context.Context, item *models.ClothingItem) (*models.ClothingItem, error) {
	id := item.ID
	if id == "" {
		id = models.NewID()
	}
	ids, err := oids(id, item.Owner)
	if err != nil {
		return nil, err
	}

	doc := itemDocument{
		ID:        ids[0],
		Name:      item.Name,
		Weather:   string(item.Weather),
		ImageURL:  item.ImageURL,
		Owner:     ids[1],
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, classify(err)
	}
	return doc.model(), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.ClothingItem, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, classify(err)
	}
	defer cur.Close(ctx)

	out := make([]models.ClothingItem, 0)
	for cur.Next(ctx) {
		var doc itemDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo error: %w", err)
		}
		out = append(out, *doc.model())
	}
	if err := cur.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.ClothingItem, error) {
	ids, err := oids(id)
	if err != nil {
		return nil, err
	}

	var doc itemDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: ids[0]}}).Decode(&doc); err != nil {
		return nil, classify(err)
	}
	return doc.model(), nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	ids, err := oids(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: ids[0]}})
	if err != nil {
		return classify(err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) updateLikes(ctx context.Context, op, id, userID string) (*models.ClothingItem, error) {
	ids, err := oids(id, userID)
	if err != nil {
		return nil, err
	}

	var doc itemDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: ids[0]}},
		bson.D{{Key: op, Value: bson.D{{Key: "likes", Value: ids[1]}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, classify(err)
	}
	return doc.model(), nil
}

func (r *MongoRepository) AddLike(ctx context.Context, id, userID string) (*models.ClothingItem, error) {
	return r.updateLikes(ctx, "$addToSet", id, userID)
}

func (r *MongoRepository) RemoveLike(ctx context.Context, id, userID string) (*models.ClothingItem, error) {
	return r.updateLikes(ctx, "$pull", id, userID)
}

func classify(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return common.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", common.ErrAlreadyExists, err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	default:
		return fmt.Errorf("mongo error: %w", err)
	}
}
