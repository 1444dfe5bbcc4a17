package repository

import (
	"context"
	"time"

	"wizzbot/internal/domain/entity"
	"wizzbot/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubscriptionRepository implements SubscriptionRepository
type MongoSubscriptionRepository struct {
	collection *mongo.Collection
}

// NewMongoSubscriptionRepository creates a new subscription repository
func NewMongoSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	collection := db.Collection("subscriptions")

	// Create index on chatId for per-user listings
	ctx := context.Background()
	chatIndex := mongo.IndexModel{
		Keys: bson.M{"chatId": 1},
	}
	collection.Indexes().CreateOne(ctx, chatIndex)

	return &MongoSubscriptionRepository{
		collection: collection,
	}
}

// GetAll returns every stored subscription
func (r *MongoSubscriptionRepository) GetAll(ctx context.Context) ([]*entity.Subscription, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*entity.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetByID finds a subscription by its id; returns nil when absent
func (r *MongoSubscriptionRepository) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	var sub entity.Subscription
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByChatID returns all subscriptions belonging to one chat
func (r *MongoSubscriptionRepository) GetByChatID(ctx context.Context, chatID int64) ([]*entity.Subscription, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"chatId": chatID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*entity.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Add stores a new subscription
func (r *MongoSubscriptionRepository) Add(ctx context.Context, sub *entity.Subscription) error {
	if sub.ID == "" {
		sub.ID = primitive.NewObjectID().Hex()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, sub)
	return err
}

// Remove deletes one subscription owned by the given chat
func (r *MongoSubscriptionRepository) Remove(ctx context.Context, chatID int64, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "chatId": chatID})
	return err
}

// UpdatePrice stores the latest observed price for a subscription
func (r *MongoSubscriptionRepository) UpdatePrice(ctx context.Context, id string, price float64) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"lastPrice": price,
		}},
	)
	return err
}

// UpdateBestDates stores the latest best-dates outcome of a range check
func (r *MongoSubscriptionRepository) UpdateBestDates(ctx context.Context, id string, bestDates []entity.DatePriceInfo, minPrice float64) error {
	update := bson.M{
		"lastPrice": minPrice,
		"bestDates": bestDates,
	}
	if len(bestDates) > 0 {
		update["bestDate"] = bestDates[0].Date
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)
	return err
}
