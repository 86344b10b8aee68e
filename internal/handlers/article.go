package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"articlehub/internal/logger"
	"articlehub/internal/models"
	"articlehub/internal/services"
	helpers "articlehub/internal/utils/helpres"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List godoc
// @Summary Список статей
// @Description Подстрочный поиск по title/content (без учёта регистра) и фильтр по дате posttime. Без дат — статьи за сегодня (UTC).
// @Tags articles
// @Security ApiKeyAuth
// @Produce json
// @Param query query string false "Подстрока для поиска в title или content"
// @Param startDate query string false "Начальная дата (YYYY-MM-DD)"
// @Param endDate query string false "Конечная дата (YYYY-MM-DD)"
// @Success 200 {array} models.Article
// @Failure 400 {string} string "Невалидная дата"
// @Router /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	articles, err := h.svc.List(r.Context(), q.Get("query"), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, articles)
}

// Create godoc
// @Summary Создать статью
// @Description Создаёт статью. id, created_at и edited_at назначает сервер; их присутствие в теле — ошибка.
// @Tags articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Данные статьи"
// @Success 201 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	dec := json.NewDecoder(r.Body)
	// отклоняем id/created_at/edited_at и прочие лишние поля
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.svc.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, article)
}

// GetByID godoc
// @Summary Получить статью по ID
// @Tags articles
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "UUID статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "Не найдено"
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	article, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// UpdateFull godoc
// @Summary Полное обновление статьи
// @Description Обновляет title/content; отсутствующие поля остаются прежними, posttime не меняется никогда.
// @Tags articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "UUID статьи"
// @Param input body models.UpdateArticleRequest true "Новые значения"
// @Success 200 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "Не найдено"
// @Router /api/articles/{id} [post]
func (h *ArticleHandler) UpdateFull(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.UpdateFull)
}

// UpdatePartial godoc
// @Summary Частичное обновление статьи
// @Description Меняет только переданные поля (title и/или content).
// @Tags articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "UUID статьи"
// @Param input body models.UpdateArticleRequest true "Изменяемые поля"
// @Success 200 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "Не найдено"
// @Router /api/articles/{id} [patch]
func (h *ArticleHandler) UpdatePartial(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.UpdatePartial)
}

// Delete godoc
// @Summary Удалить статью
// @Tags articles
// @Security ApiKeyAuth
// @Param id path string true "UUID статьи"
// @Success 204 {string} string "Удалено"
// @Failure 404 {string} string "Не найдено"
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	helpers.NoContent(w)
}

func (h *ArticleHandler) update(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error),
) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при обновлении статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := apply(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// articleID достаёт UUID из пути; невалидный UUID неотличим от несуществующего id.
func (h *ArticleHandler) articleID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный UUID статьи", zap.String("id", mux.Vars(r)["id"]))
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ArticleHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
	case errors.As(err, &verr):
		helpers.Error(w, http.StatusBadRequest, verr.Error())
	default:
		logger.WithCtx(r.Context()).Error("Внутренняя ошибка", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}
