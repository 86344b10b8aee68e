package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"articlehub/internal/logger"
	"articlehub/internal/models"
	"articlehub/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArticleService interface {
	Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	List(ctx context.Context, query, startDate, endDate string) ([]*models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	UpdateFull(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error)
	UpdatePartial(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleService struct {
	repo     repository.ArticleRepo
	validate *validator.Validate
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	return &articleService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Create валидирует запрос, назначает id и сохраняет статью.
// created_at и edited_at проставляет хранилище одним моментом времени.
func (s *articleService) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи", zap.String("title", strings.TrimSpace(req.Title)))

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field())
			log.Warn("Валидация не пройдена", zap.String("field", field))
			return nil, NewValidationError(field, "обязательное поле")
		}
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "не может быть пустым")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "не может быть пустым")
	}

	postTime, err := ParsePostTime(req.PostTime)
	if err != nil {
		log.Warn("Валидация не пройдена: posttime", zap.String("posttime", req.PostTime))
		return nil, err
	}

	article := &models.Article{
		ID:       uuid.New(),
		Title:    req.Title,
		Content:  req.Content,
		PostTime: postTime,
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		log.Error("Ошибка создания статьи", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.String("article_id", created.ID.String()))
	return created, nil
}

// List возвращает статьи по подстроке (title или content) и диапазону
// posttime, отсортированные по created_at по убыванию. Без пагинации.
func (s *articleService) List(ctx context.Context, query, startDate, endDate string) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Список статей",
		zap.String("query", query),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
	)

	from, to, err := ResolveDateRange(startDate, endDate, time.Now())
	if err != nil {
		log.Warn("Невалидный диапазон дат", zap.Error(err))
		return nil, err
	}

	items, err := s.repo.List(ctx, query, from, to)
	if err != nil {
		log.Error("Ошибка получения списка статей", zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []*models.Article{}
	}

	log.Debug("Список статей получен", zap.Int("count", len(items)))
	return items, nil
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("Статья не найдена", zap.String("article_id", id.String()))
			return nil, ErrArticleNotFound
		}
		log.Error("Ошибка выборки статьи", zap.Error(err))
		return nil, err
	}
	return a, nil
}

// UpdateFull — «полное» обновление: отсутствующие title/content берутся из
// существующей записи, posttime принудительно сохраняется прежним.
func (s *articleService) UpdateFull(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error) {
	logger.WithCtx(ctx).Info("Полное обновление статьи", zap.String("article_id", id.String()))

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	content := existing.Content
	if req.Content != nil {
		content = *req.Content
	}

	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "не может быть пустым")
	}
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "не может быть пустым")
	}

	return s.applyUpdate(ctx, id, title, content)
}

// UpdatePartial — частичное обновление: меняются только переданные поля.
func (s *articleService) UpdatePartial(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error) {
	logger.WithCtx(ctx).Info("Частичное обновление статьи", zap.String("article_id", id.String()))

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, NewValidationError("title", "не может быть пустым")
		}
		title = *req.Title
	}
	content := existing.Content
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, NewValidationError("content", "не может быть пустым")
		}
		content = *req.Content
	}

	return s.applyUpdate(ctx, id, title, content)
}

func (s *articleService) applyUpdate(ctx context.Context, id uuid.UUID, title, content string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	updated, err := s.repo.Update(ctx, id, title, content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		log.Error("Ошибка обновления статьи",
			zap.String("article_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("Статья обновлена", zap.String("article_id", id.String()))
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("article_id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("Статья не найдена при удалении", zap.String("article_id", id.String()))
			return ErrArticleNotFound
		}
		log.Error("Ошибка удаления статьи",
			zap.String("article_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	log.Info("Статья удалена", zap.String("article_id", id.String()))
	return nil
}
