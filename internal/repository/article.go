package repository

import (
	"context"
	"time"

	"articlehub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	List(ctx context.Context, query string, from, to time.Time) ([]*models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	Update(ctx context.Context, id uuid.UUID, title, content string) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, content, posttime, created_at, edited_at`

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (id, title, content, posttime, created_at, edited_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + articleColumns

	var out models.Article
	err := r.db.QueryRow(ctx, q, a.ID, a.Title, a.Content, a.PostTime).Scan(
		&out.ID, &out.Title, &out.Content, &out.PostTime, &out.CreatedAt, &out.EditedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List — подстрочный поиск по title/content (без учёта регистра) плюс
// инклюзивный диапазон по posttime. Пустой query матчит все записи.
func (r *articleRepo) List(ctx context.Context, query string, from, to time.Time) ([]*models.Article, error) {
	const q = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE (title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%')
		  AND posttime BETWEEN $2 AND $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, q, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.PostTime, &a.CreatedAt, &a.EditedAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *articleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.PostTime, &a.CreatedAt, &a.EditedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update меняет только title/content; posttime остаётся как есть.
func (r *articleRepo) Update(ctx context.Context, id uuid.UUID, title, content string) (*models.Article, error) {
	const q = `
		UPDATE articles
		SET title = $1, content = $2, edited_at = NOW()
		WHERE id = $3
		RETURNING ` + articleColumns

	var a models.Article
	if err := r.db.QueryRow(ctx, q, title, content, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.PostTime, &a.CreatedAt, &a.EditedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
