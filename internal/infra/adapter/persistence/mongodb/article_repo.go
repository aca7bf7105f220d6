package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// articleCollection is the collection name for article documents.
const articleCollection = "article"

type ArticleRepo struct {
	coll          *mongo.Collection
	filterBuilder *ArticleFilterBuilder
}

func NewArticleRepo(db *mongo.Database) repository.ArticleRepository {
	return &ArticleRepo{
		coll:          db.Collection(articleCollection),
		filterBuilder: NewArticleFilterBuilder(),
	}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (primitive.ObjectID, error) {
	res, err := repo.coll.InsertOne(ctx, article)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("Create: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("Create: unexpected inserted ID type %T", res.InsertedID)
	}
	article.ID = id
	return id, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	return repo.findOne(ctx, "Get", repo.filterBuilder.ByID(id))
}

func (repo *ArticleRepo) GetLive(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	return repo.findOne(ctx, "GetLive", repo.filterBuilder.LiveByID(id))
}

func (repo *ArticleRepo) GetPublished(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	return repo.findOne(ctx, "GetPublished", repo.filterBuilder.PublishedByID(id))
}

func (repo *ArticleRepo) findOne(ctx context.Context, op string, filter bson.M) (*entity.Article, error) {
	var article entity.Article
	err := repo.coll.FindOne(ctx, filter).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &article, nil
}

func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleListFilter) ([]*entity.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetLimit(*filter.Limit)
	return repo.find(ctx, "List", repo.filterBuilder.PublicList(filter), opts)
}

func (repo *ArticleRepo) ListAdmin(ctx context.Context, filter repository.ArticleAdminFilter) ([]*entity.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(*filter.Limit)
	return repo.find(ctx, "ListAdmin", repo.filterBuilder.AdminList(filter), opts)
}

func (repo *ArticleRepo) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]*entity.Article, error) {
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	articles := make([]*entity.Article, 0, 24)
	for cursor.Next(ctx) {
		var article entity.Article
		if err := cursor.Decode(&article); err != nil {
			return nil, fmt.Errorf("%s: Decode: %w", op, err)
		}
		articles = append(articles, &article)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) (bool, error) {
	update := bson.M{"$set": bson.M{
		"title":        article.Title,
		"summary":      article.Summary,
		"content":      article.Content,
		"category":     article.Category,
		"region":       article.Region,
		"tags":         article.Tags,
		"author":       article.Author,
		"image_url":    article.ImageURL,
		"published":    article.Published,
		"published_at": article.PublishedAt,
		"updated_at":   article.UpdatedAt,
	}}
	res, err := repo.coll.UpdateOne(ctx, repo.filterBuilder.LiveByID(article.ID), update)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (repo *ArticleRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	update := bson.M{"$set": bson.M{
		"deleted":    true,
		"published":  false,
		"updated_at": nowUTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, repo.filterBuilder.ByID(id), update)
	if err != nil {
		return false, fmt.Errorf("SoftDelete: %w", err)
	}
	return res.MatchedCount > 0, nil
}
