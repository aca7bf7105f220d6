package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// projectCollection is the collection name for project documents.
const projectCollection = "project"

func nowUTC() time.Time {
	return time.Now().UTC()
}

type ProjectRepo struct {
	coll *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) repository.ProjectRepository {
	return &ProjectRepo{coll: db.Collection(projectCollection)}
}

func (repo *ProjectRepo) Create(ctx context.Context, project *entity.Project) (primitive.ObjectID, error) {
	res, err := repo.coll.InsertOne(ctx, project)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("Create: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("Create: unexpected inserted ID type %T", res.InsertedID)
	}
	project.ID = id
	return id, nil
}

func (repo *ProjectRepo) Get(ctx context.Context, id primitive.ObjectID) (*entity.Project, error) {
	var project entity.Project
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &project, nil
}

func (repo *ProjectRepo) List(ctx context.Context, filter repository.ProjectListFilter) ([]*entity.Project, error) {
	query := bson.M{}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(*filter.Limit)
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	projects := make([]*entity.Project, 0, 24)
	for cursor.Next(ctx) {
		var project entity.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, fmt.Errorf("List: Decode: %w", err)
		}
		projects = append(projects, &project)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return projects, nil
}

func (repo *ProjectRepo) Update(ctx context.Context, project *entity.Project) (bool, error) {
	update := bson.M{"$set": bson.M{
		"name":        project.Name,
		"description": project.Description,
		"link":        project.Link,
		"tags":        project.Tags,
		"status":      project.Status,
		"updated_at":  project.UpdatedAt,
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": project.ID}, update)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (repo *ProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return res.DeletedCount > 0, nil
}
