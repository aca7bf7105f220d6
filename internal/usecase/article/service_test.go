package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ ArticleRepository
type stubRepo struct {
	data     map[primitive.ObjectID]*entity.Article
	err      error // 強制的にエラーを返したいとき用
	lastList repository.ArticleListFilter
	lastAdm  repository.ArticleAdminFilter
}

func newStub() *stubRepo {
	return &stubRepo{data: map[primitive.ObjectID]*entity.Article{}}
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

func (s *stubRepo) List(_ context.Context, f repository.ArticleListFilter) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastList = f
	var out []*entity.Article
	for _, a := range s.data {
		if a.Published && !a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAdmin(_ context.Context, f repository.ArticleAdminFilter) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastAdm = f
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

// SoftDelete matches by ID alone, so an already-deleted document is matched
// again, mirroring the Mongo implementation.
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
	a.UpdatedAt = time.Now().UTC()
	return true, nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func validInput() artUC.CreateInput {
	return artUC.CreateInput{
		Title:    "t",
		Content:  "c",
		Category: "politics",
		Region:   "eu",
	}
}

/* ───────── 1. Create のバリデーション ───────── */

func TestService_Create_validation(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	tests := []struct {
		name  string
		in    artUC.CreateInput
		field string
	}{
		{"missing title", artUC.CreateInput{Content: "c", Category: "x", Region: "y"}, "title"},
		{"missing content", artUC.CreateInput{Title: "t", Category: "x", Region: "y"}, "content"},
		{"missing category", artUC.CreateInput{Title: "t", Content: "c", Region: "y"}, "category"},
		{"missing region", artUC.CreateInput{Title: "t", Content: "c", Category: "x"}, "region"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var verr *entity.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

/* ───────── 2. Create → published_at の付与 ───────── */

func TestService_Create_publishedAtStamped(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	before := time.Now().UTC()
	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !art.Published {
		t.Error("Published = false, want true by default")
	}
	if art.PublishedAt == nil {
		t.Fatal("PublishedAt = nil, want stamped")
	}
	if art.PublishedAt.Before(before) {
		t.Errorf("PublishedAt = %v, want at or after %v", art.PublishedAt, before)
	}
	if art.Deleted {
		t.Error("Deleted = true, want false")
	}
}

func TestService_Create_draftHasNoPublishedAt(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	in := validInput()
	in.Published = boolPtr(false)
	art, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if art.Published {
		t.Error("Published = true, want false")
	}
	if art.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil for draft", art.PublishedAt)
	}
}

func TestService_Create_callerSuppliedPublishedAtKept(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	supplied := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := validInput()
	in.PublishedAt = &supplied
	art, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if art.PublishedAt == nil || !art.PublishedAt.Equal(supplied) {
		t.Errorf("PublishedAt = %v, want %v", art.PublishedAt, supplied)
	}
}

func TestService_Create_nilTagsBecomeEmptySlice(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if art.Tags == nil {
		t.Error("Tags = nil, want empty slice")
	}
}

/* ───────── 3. Get ───────── */

func TestService_Get(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(context.Background(), art.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != art.ID {
		t.Errorf("ID = %v, want %v", got.ID, art.ID)
	}

	// 未公開の記事は公開APIからは見えない
	draft := validInput()
	draft.Published = boolPtr(false)
	d, err := svc.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	if _, err := svc.Get(context.Background(), d.ID); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("Get draft: want ErrArticleNotFound, got %v", err)
	}

	if _, err := svc.Get(context.Background(), primitive.NewObjectID()); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("Get missing: want ErrArticleNotFound, got %v", err)
	}
}

/* ───────── 4. List の limit 検証 ───────── */

func TestService_List_limitValidation(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	// 未指定はデフォルトに置き換えられる
	if _, err := svc.List(context.Background(), repository.ArticleListFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if stub.lastList.Limit == nil || *stub.lastList.Limit != artUC.DefaultPublicLimit {
		t.Errorf("Limit = %v, want %d", stub.lastList.Limit, artUC.DefaultPublicLimit)
	}

	// 明示的な 0 はデフォルトではなく検証エラー
	for _, limit := range []int64{0, -1, artUC.MaxPublicLimit + 1} {
		_, err := svc.List(context.Background(), repository.ArticleListFilter{Limit: i64Ptr(limit)})
		var verr *entity.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("List(limit=%d): want ValidationError, got %v", limit, err)
		}
	}

	if _, err := svc.List(context.Background(), repository.ArticleListFilter{Limit: i64Ptr(artUC.MaxPublicLimit)}); err != nil {
		t.Errorf("List(limit=max): %v", err)
	}
}

func TestService_ListAdmin_limitValidation(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	if _, err := svc.ListAdmin(context.Background(), repository.ArticleAdminFilter{}); err != nil {
		t.Fatalf("ListAdmin: %v", err)
	}
	if stub.lastAdm.Limit == nil || *stub.lastAdm.Limit != artUC.DefaultAdminLimit {
		t.Errorf("Limit = %v, want %d", stub.lastAdm.Limit, artUC.DefaultAdminLimit)
	}

	for _, limit := range []int64{0, artUC.MaxAdminLimit + 1} {
		_, err := svc.ListAdmin(context.Background(), repository.ArticleAdminFilter{Limit: i64Ptr(limit)})
		var verr *entity.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ListAdmin(limit=%d): want ValidationError, got %v", limit, err)
		}
	}
}

/* ───────── 5. Update ───────── */

func TestService_Update_emptyPatch(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: primitive.NewObjectID()})
	if !errors.Is(err, artUC.ErrEmptyUpdate) {
		t.Fatalf("want ErrEmptyUpdate, got %v", err)
	}
}

func TestService_Update_notFound(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID:    primitive.NewObjectID(),
		Title: strPtr("new"),
	})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("want ErrArticleNotFound, got %v", err)
	}
}

func TestService_Update_appliesOnlyProvidedFields(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	art, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "old", Summary: "sum", Content: "c", Category: "x", Region: "y",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID:    art.ID,
		Title: strPtr("new"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "new" {
		t.Errorf("Title = %q, want %q", got.Title, "new")
	}
	if got.Summary != "sum" {
		t.Errorf("Summary = %q, want untouched %q", got.Summary, "sum")
	}
}

func TestService_Update_rejectsEmptyRequiredField(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(context.Background(), artUC.UpdateInput{ID: art.ID, Title: strPtr("")})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestService_Update_publishedAtSetOnce(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	in := validInput()
	in.Published = boolPtr(false)
	art, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if art.PublishedAt != nil {
		t.Fatal("draft should have nil PublishedAt")
	}

	// 初回公開でスタンプされる
	pub1, err := svc.Update(context.Background(), artUC.UpdateInput{ID: art.ID, Published: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update publish: %v", err)
	}
	if pub1.PublishedAt == nil {
		t.Fatal("PublishedAt = nil after first publish")
	}
	first := *pub1.PublishedAt

	// 非公開→再公開してもタイムスタンプは変わらない
	if _, err := svc.Update(context.Background(), artUC.UpdateInput{ID: art.ID, Published: boolPtr(false)}); err != nil {
		t.Fatalf("Update unpublish: %v", err)
	}
	pub2, err := svc.Update(context.Background(), artUC.UpdateInput{ID: art.ID, Published: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update republish: %v", err)
	}
	if !pub2.PublishedAt.Equal(first) {
		t.Errorf("PublishedAt changed on republish: %v, want %v", pub2.PublishedAt, first)
	}
}

/* ───────── 6. Delete（ソフトデリート） ───────── */

func TestService_Delete(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), art.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// ストアには残るがフラグが立つ
	stored := stub.data[art.ID]
	if stored == nil {
		t.Fatal("document removed from store, want soft delete")
	}
	if !stored.Deleted || stored.Published {
		t.Errorf("Deleted=%v Published=%v, want true/false", stored.Deleted, stored.Published)
	}

	// 公開APIからは消える
	if _, err := svc.Get(context.Background(), art.ID); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("Get after delete: want ErrArticleNotFound, got %v", err)
	}

	// 二重削除は冪等
	if err := svc.Delete(context.Background(), art.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if stored := stub.data[art.ID]; !stored.Deleted {
		t.Error("Deleted = false after second delete, want true")
	}
}

func TestService_Delete_notFound(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("want ErrArticleNotFound, got %v", err)
	}
}

/* ───────── 7. リポジトリ障害の伝播 ───────── */

func TestService_repoErrorPropagates(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("connection reset")
	svc := artUC.Service{Repo: stub}

	if _, err := svc.Create(context.Background(), validInput()); err == nil {
		t.Error("Create: want error, got nil")
	}
	if _, err := svc.List(context.Background(), repository.ArticleListFilter{Limit: i64Ptr(10)}); err == nil {
		t.Error("List: want error, got nil")
	}
	if err := svc.Delete(context.Background(), primitive.NewObjectID()); err == nil {
		t.Error("Delete: want error, got nil")
	}
}
