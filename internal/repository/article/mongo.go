package article

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

// CollectionName is the articles collection in the document store.
const CollectionName = "articles"

type mongoRepo struct {
	coll   *mongo.Collection
	logger *log.Logger
}

// MongoRepository is a Repository that can also create its own indexes.
type MongoRepository interface {
	Repository
	EnsureIndexes(ctx context.Context) error
}

// NewMongo returns a Repository backed by the articles collection of db.
func NewMongo(db *mongo.Database, logger *log.Logger) MongoRepository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{coll: db.Collection(CollectionName), logger: logger}
}

func (r *mongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	})
	if err != nil {
		return err
	}
	r.logger.Printf("article repo: indexes ensured on %s", CollectionName)
	return nil
}

func (r *mongoRepo) List(ctx context.Context, f ListFilter) ([]domain.Article, error) {
	filter := bson.D{}
	if f.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: f.Category})
	}
	if f.FeaturedOnly {
		filter = append(filter, bson.E{Key: "featured", Value: true})
	}
	opts := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Printf("article repo: list category=%q featured=%t error=%v", f.Category, f.FeaturedOnly, err)
		return nil, err
	}
	result := []domain.Article{}
	if err := cur.All(ctx, &result); err != nil {
		r.logger.Printf("article repo: list decode error=%v", err)
		return nil, err
	}
	for i := range result {
		normalizeTimes(&result[i])
	}
	r.logger.Printf("article repo: list category=%q featured=%t count=%d", f.Category, f.FeaturedOnly, len(result))
	return result, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Printf("article repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("article repo: get id=%s error=%v", id, err)
		return nil, err
	}
	normalizeTimes(&a)
	return &a, nil
}

func (r *mongoRepo) Insert(ctx context.Context, a domain.Article) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		r.logger.Printf("article repo: insert id=%s error=%v", a.ID, err)
		return err
	}
	r.logger.Printf("article repo: inserted id=%s category=%q", a.ID, a.Category)
	return nil
}

func (r *mongoRepo) Update(ctx context.Context, id string, patch domain.ArticlePatch) (int64, error) {
	set := bson.D{{Key: "updatedAt", Value: patch.UpdatedAt}}
	add := func(key string, v any) {
		set = append(set, bson.E{Key: key, Value: v})
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Author != nil {
		add("author", *patch.Author)
	}
	if patch.PublishDate != nil {
		add("publishDate", domain.Timestamp(patch.PublishDate.Time))
	}
	if patch.ReadTime != nil {
		add("readTime", *patch.ReadTime)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Featured != nil {
		add("featured", *patch.Featured)
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		r.logger.Printf("article repo: update id=%s error=%v", id, err)
		return 0, err
	}
	r.logger.Printf("article repo: update id=%s fields=%d matched=%d", id, len(set), res.MatchedCount)
	return res.MatchedCount, nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		r.logger.Printf("article repo: delete id=%s error=%v", id, err)
		return 0, err
	}
	r.logger.Printf("article repo: delete id=%s affected=%d", id, res.DeletedCount)
	return res.DeletedCount, nil
}

func (r *mongoRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		r.logger.Printf("article repo: count error=%v", err)
		return 0, err
	}
	return n, nil
}

func (r *mongoRepo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Printf("article repo: count by category error=%v", err)
		return nil, err
	}
	var result []domain.CategoryCount
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *mongoRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	r.logger.Printf("article repo: cleared %d articles", res.DeletedCount)
	return res.DeletedCount, nil
}

func normalizeTimes(a *domain.Article) {
	a.PublishDate = a.PublishDate.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
}
