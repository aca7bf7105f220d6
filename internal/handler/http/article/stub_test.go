package article_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// 最小限のインメモリ ArticleRepository。各ハンドラテストで共有。
type stubRepo struct {
	data map[primitive.ObjectID]*entity.Article
	err  error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[primitive.ObjectID]*entity.Article{}}
}

// seed stores a published article and returns it.
func (s *stubRepo) seed() *entity.Article {
	now := time.Now().UTC()
	a := &entity.Article{
		ID:          primitive.NewObjectID(),
		Title:       "Summit concludes",
		Summary:     "short",
		Content:     "long body",
		Category:    "politics",
		Region:      "eu",
		Tags:        []string{"summit"},
		Published:   true,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.data[a.ID] = a
	return a
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (primitive.ObjectID, error) {
	if s.err != nil {
		return primitive.NilObjectID, s.err
	}
	a.ID = primitive.NewObjectID()
	s.data[a.ID] = a
	return a.ID, nil
}

func (s *stubRepo) Get(_ context.Context, id primitive.ObjectID) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetLive(_ context.Context, id primitive.ObjectID) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := s.data[id]
	if a == nil || a.Deleted {
		return nil, nil
	}
	return a, nil
}

func (s *stubRepo) GetPublished(_ context.Context, id primitive.ObjectID) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := s.data[id]
	if a == nil || a.Deleted || !a.Published {
		return nil, nil
	}
	return a, nil
}

func (s *stubRepo) List(_ context.Context, _ repository.ArticleListFilter) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		if a.Published && !a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAdmin(_ context.Context, _ repository.ArticleAdminFilter) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		if !a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	existing := s.data[a.ID]
	if existing == nil || existing.Deleted {
		return false, nil
	}
	s.data[a.ID] = a
	return true, nil
}

// SoftDelete matches by ID alone, as the Mongo implementation does, so an
// already-deleted document deletes again without error.
func (s *stubRepo) SoftDelete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	a := s.data[id]
	if a == nil {
		return false, nil
	}
	a.Deleted = true
	a.Published = false
	return true, nil
}
