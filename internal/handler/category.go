package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/middleware"
	"github.com/SergeyBogomolovv/eshop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategory(ctx context.Context, id string) (entities.Category, error)
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	UpdateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	authn    Middleware
	svc      CategoryService
}

func NewCategoryHandler(logger *slog.Logger, authn Middleware, svc CategoryService) *CategoryHandler {
	return &CategoryHandler{
		logger:   logger.With(slog.String("handler", "category")),
		validate: validator.New(),
		authn:    authn,
		svc:      svc,
	}
}

func (h *CategoryHandler) Init(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/{id}", h.GetCategory)

		r.Group(func(r chi.Router) {
			r.Use(h.authn, middleware.RequireAdmin)

			r.Post("/", h.CreateCategory)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})
	})
}

// ListCategories возвращает все категории.
// @Summary      Список категорий
// @Tags         categories
// @Produce      json
// @Success      200  {object}  utils.Envelope "categories: []Category"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.svc.ListCategories(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list categories")
		return
	}

	res := make([]Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryEntityToJSON(c))
	}
	utils.WriteOK(w, http.StatusOK, "categories found", "categories", res)
}

// GetCategory возвращает категорию по ID.
// @Summary      Получить категорию
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Идентификатор категории"
// @Success      200  {object}  utils.Envelope "category: Category"
// @Failure      404  {object}  utils.ErrorResponse "Категория не найдена"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	category, err := h.svc.GetCategory(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get category")
		return
	}

	utils.WriteOK(w, http.StatusOK, "category found", "category", CategoryEntityToJSON(category))
}

// CreateCategory создает категорию.
// @Summary      Создать категорию
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  body      CategoryRequest  true  "Категория"
// @Success      201       {object}  utils.Envelope "category: Category"
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, ok := h.decode(w, r)
	if !ok {
		return
	}

	category, err := h.svc.CreateCategory(ctx, CategoryJSONToEntity("", body))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create category")
		return
	}

	utils.WriteOK(w, http.StatusCreated, "category created", "category", CategoryEntityToJSON(category))
}

// UpdateCategory изменяет категорию.
// @Summary      Изменить категорию
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string           true  "Идентификатор категории"
// @Param        category  body      CategoryRequest  true  "Категория"
// @Success      200       {object}  utils.Envelope "category: Category"
// @Failure      404       {object}  utils.ErrorResponse "Категория не найдена"
// @Failure      422       {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	body, ok := h.decode(w, r)
	if !ok {
		return
	}

	category, err := h.svc.UpdateCategory(ctx, CategoryJSONToEntity(id, body))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update category")
		return
	}

	utils.WriteOK(w, http.StatusOK, "category updated", "category", CategoryEntityToJSON(category))
}

// DeleteCategory удаляет категорию.
// @Summary      Удалить категорию
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор категории"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.ErrorResponse "Категория не найдена"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	if err := h.svc.DeleteCategory(ctx, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete category")
		return
	}

	utils.WriteOK(w, http.StatusOK, "category deleted", "", nil)
}

func (h *CategoryHandler) decode(w http.ResponseWriter, r *http.Request) (CategoryRequest, bool) {
	var body CategoryRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorDetail(w, "invalid request body", err, http.StatusBadRequest)
		return body, false
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return body, false
	}
	return body, true
}
