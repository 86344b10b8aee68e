package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"articlehub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Мок-репозиторий (заглушка) с управляемыми часами.
type mockArticleRepo struct {
	articles map[uuid.UUID]*models.Article
	now      time.Time

	lastQuery string
	lastFrom  time.Time
	lastTo    time.Time
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{
		articles: make(map[uuid.UUID]*models.Article),
		now:      time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	stored := *a
	stored.CreatedAt = m.now
	stored.EditedAt = m.now
	m.articles[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *mockArticleRepo) List(_ context.Context, query string, from, to time.Time) ([]*models.Article, error) {
	m.lastQuery, m.lastFrom, m.lastTo = query, from, to

	q := strings.ToLower(query)
	var list []*models.Article
	for _, a := range m.articles {
		matches := strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q)
		inRange := !a.PostTime.Before(from) && !a.PostTime.After(to)
		if matches && inRange {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) Update(_ context.Context, id uuid.UUID, title, content string) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	a.Title = title
	a.Content = content
	a.EditedAt = m.now
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.articles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.articles, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateArticle(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	created, err := service.Create(context.Background(), models.CreateArticleRequest{
		Title:    "A",
		Content:  "B",
		PostTime: "2024-01-01T00:00:00",
	})
	if err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Fatal("id не назначен")
	}
	if !created.CreatedAt.Equal(created.EditedAt) {
		t.Fatal("created_at и edited_at должны совпадать при создании")
	}
	if created.Title != "A" || created.Content != "B" {
		t.Fatalf("поля сохранены неверно: %+v", created)
	}
	if !created.PostTime.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("posttime сохранён неверно: %v", created.PostTime)
	}
}

func TestCreateArticle_Validation(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	cases := []models.CreateArticleRequest{
		{Content: "B", PostTime: "2024-01-01"},
		{Title: "A", PostTime: "2024-01-01"},
		{Title: "A", Content: "B"},
		{Title: "A", Content: "B", PostTime: "не дата"},
	}

	for _, req := range cases {
		_, err := service.Create(context.Background(), req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ожидалась ValidationError для %+v, получили %v", req, err)
		}
	}
}

func TestUpdateFull_OmittedFieldsPreserved(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	created, _ := service.Create(context.Background(), models.CreateArticleRequest{
		Title: "T1", Content: "C1", PostTime: "2024-01-01T00:00:00",
	})

	repo.now = repo.now.Add(time.Hour)

	updated, err := service.UpdateFull(context.Background(), created.ID, models.UpdateArticleRequest{
		Title: strPtr("T2"),
	})
	if err != nil {
		t.Fatalf("ошибка полного обновления: %v", err)
	}

	if updated.Title != "T2" {
		t.Fatalf("title не обновился: %q", updated.Title)
	}
	if updated.Content != "C1" {
		t.Fatalf("content должен остаться прежним: %q", updated.Content)
	}
	if !updated.PostTime.Equal(created.PostTime) {
		t.Fatal("posttime не должен меняться при полном обновлении")
	}
	if !updated.EditedAt.After(updated.CreatedAt) {
		t.Fatal("edited_at должен обновиться")
	}
}

func TestUpdatePartial_OnlyProvidedFields(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	created, _ := service.Create(context.Background(), models.CreateArticleRequest{
		Title: "T1", Content: "C1", PostTime: "2024-01-01T00:00:00",
	})

	repo.now = repo.now.Add(time.Hour)

	updated, err := service.UpdatePartial(context.Background(), created.ID, models.UpdateArticleRequest{
		Content: strPtr("C2"),
	})
	if err != nil {
		t.Fatalf("ошибка частичного обновления: %v", err)
	}

	if updated.Title != "T1" {
		t.Fatalf("title должен остаться прежним: %q", updated.Title)
	}
	if updated.Content != "C2" {
		t.Fatalf("content не обновился: %q", updated.Content)
	}
	if !updated.PostTime.Equal(created.PostTime) {
		t.Fatal("posttime не должен меняться при частичном обновлении")
	}
}

func TestUpdate_EmptyFieldRejected(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	created, _ := service.Create(context.Background(), models.CreateArticleRequest{
		Title: "T1", Content: "C1", PostTime: "2024-01-01T00:00:00",
	})

	var verr *ValidationError

	_, err := service.UpdateFull(context.Background(), created.ID, models.UpdateArticleRequest{Title: strPtr("  ")})
	if !errors.As(err, &verr) {
		t.Fatalf("ожидалась ValidationError, получили %v", err)
	}

	_, err = service.UpdatePartial(context.Background(), created.ID, models.UpdateArticleRequest{Content: strPtr("")})
	if !errors.As(err, &verr) {
		t.Fatalf("ожидалась ValidationError, получили %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	_, err := service.UpdateFull(context.Background(), uuid.New(), models.UpdateArticleRequest{Title: strPtr("T")})
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("ожидалась ErrArticleNotFound, получили %v", err)
	}

	_, err = service.UpdatePartial(context.Background(), uuid.New(), models.UpdateArticleRequest{Title: strPtr("T")})
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("ожидалась ErrArticleNotFound, получили %v", err)
	}
}

func TestDelete_ThenNotFound(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	created, _ := service.Create(context.Background(), models.CreateArticleRequest{
		Title: "T1", Content: "C1", PostTime: "2024-01-01T00:00:00",
	})

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}

	if _, err := service.GetByID(context.Background(), created.ID); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("ожидалась ErrArticleNotFound после удаления, получили %v", err)
	}

	// повторное удаление — тоже 404, не тихий успех
	if err := service.Delete(context.Background(), created.ID); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("ожидалась ErrArticleNotFound при повторном удалении, получили %v", err)
	}
}

func TestList_FilterAndOrder(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	mk := func(title, content, posttime string) *models.Article {
		a, err := service.Create(context.Background(), models.CreateArticleRequest{
			Title: title, Content: content, PostTime: posttime,
		})
		if err != nil {
			t.Fatalf("ошибка создания статьи: %v", err)
		}
		repo.now = repo.now.Add(time.Minute)
		return a
	}

	first := mk("Про котов", "текст", "2024-03-01T10:00:00")
	second := mk("Новости", "снова про КОТОВ", "2024-03-02T10:00:00")
	mk("Про собак", "текст", "2024-03-03T10:00:00")
	mk("Коты вне диапазона", "котов тут много", "2024-05-01T10:00:00")

	list, err := service.List(context.Background(), "котов", "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("ожидалось 2 статьи, получили %d", len(list))
	}
	// порядок — по created_at по убыванию
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("неверный порядок: %v, %v", list[0].Title, list[1].Title)
	}
}

func TestList_EmptyQueryMatchesAll(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	if _, err := service.Create(context.Background(), models.CreateArticleRequest{
		Title: "T", Content: "C", PostTime: "2024-03-01T10:00:00",
	}); err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}

	list, err := service.List(context.Background(), "", "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("пустой query должен матчить все записи, получили %d", len(list))
	}
}

func TestList_BadDate(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	_, err := service.List(context.Background(), "", "2024/03/01", "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ожидалась ValidationError, получили %v", err)
	}
}

func TestList_NoDatesDefaultsToToday(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo)

	if _, err := service.List(context.Background(), "кот", "", ""); err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}

	if repo.lastQuery != "кот" {
		t.Fatalf("query передан неверно: %q", repo.lastQuery)
	}

	today := time.Now().UTC()
	y, m, d := today.Date()
	wantFrom := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if !repo.lastFrom.Equal(wantFrom) {
		t.Fatalf("нижняя граница должна быть началом текущего дня: %v", repo.lastFrom)
	}
	if !repo.lastTo.Equal(wantFrom.Add(24*time.Hour - time.Nanosecond)) {
		t.Fatalf("верхняя граница должна быть концом текущего дня: %v", repo.lastTo)
	}
}
