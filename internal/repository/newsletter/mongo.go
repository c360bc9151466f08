package newsletter

import (
	"context"
	"errors"
	"io"
	"log"

	"fitlife-blog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the subscribers collection in the document store.
const CollectionName = "newsletter_subscribers"

// MongoRepository is a Repository that can also create its own indexes.
type MongoRepository interface {
	Repository
	EnsureIndexes(ctx context.Context) error
}

type mongoRepo struct {
	coll   *mongo.Collection
	logger *log.Logger
}

// NewMongo returns a Repository backed by the subscribers collection of db.
func NewMongo(db *mongo.Database, logger *log.Logger) MongoRepository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{coll: db.Collection(CollectionName), logger: logger}
}

func (r *mongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	r.logger.Printf("newsletter repo: indexes ensured on %s", CollectionName)
	return nil
}

func (r *mongoRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var s domain.NewsletterSubscriber
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("newsletter repo: get email=%s error=%v", email, err)
		return nil, err
	}
	s.SubscribedAt = s.SubscribedAt.UTC()
	return &s, nil
}

func (r *mongoRepo) Insert(ctx context.Context, s domain.NewsletterSubscriber) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		r.logger.Printf("newsletter repo: insert email=%s error=%v", s.Email, err)
		return err
	}
	r.logger.Printf("newsletter repo: inserted id=%s", s.ID)
	return nil
}

func (r *mongoRepo) List(ctx context.Context, limit int) ([]domain.NewsletterSubscriber, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "subscribedAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Printf("newsletter repo: list error=%v", err)
		return nil, err
	}
	result := []domain.NewsletterSubscriber{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	for i := range result {
		result[i].SubscribedAt = result[i].SubscribedAt.UTC()
	}
	r.logger.Printf("newsletter repo: list count=%d", len(result))
	return result, nil
}
