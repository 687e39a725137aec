package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/middleware"
	"github.com/SergeyBogomolovv/eshop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxGalleryImages = 10

var errMissingImage = errors.New("image is required")

type ProductService interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	CountProducts(ctx context.Context) (int, error)
	CreateProduct(ctx context.Context, p entities.Product, image io.Reader) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product, image io.Reader) (entities.Product, error)
	UpdateGallery(ctx context.Context, id string, images []io.Reader) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	authn         Middleware
	svc           ProductService
	maxUploadSize int64
}

func NewProductHandler(logger *slog.Logger, authn Middleware, svc ProductService, maxUploadSize int64) *ProductHandler {
	return &ProductHandler{
		logger:        logger.With(slog.String("handler", "product")),
		validate:      validator.New(),
		authn:         authn,
		svc:           svc,
		maxUploadSize: maxUploadSize,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
		r.Get("/get/featured/{count}", h.FeaturedProducts)

		r.Group(func(r chi.Router) {
			r.Use(h.authn, middleware.RequireAdmin)

			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Put("/gallery-images/{id}", h.UpdateGallery)
			r.Delete("/{id}", h.DeleteProduct)
			r.Get("/get/count", h.CountProducts)
		})
	})
}

// ListProducts возвращает товары.
// @Summary      Список товаров
// @Tags         products
// @Produce      json
// @Param        categories  query     string  false  "ID категорий через запятую"
// @Success      200         {object}  utils.Envelope "products: []Product"
// @Failure      422         {object}  utils.ValidationErrorResponse "Некорректный ID категории"
// @Failure      502         {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter entities.ProductFilter
	if raw := r.URL.Query().Get("categories"); raw != "" {
		filter.CategoryIDs = strings.Split(raw, ",")
		if err := h.validate.Var(filter.CategoryIDs, "dive,uuid"); err != nil {
			utils.WriteInvalidID(w, err)
			return
		}
	}

	products, err := h.svc.ListProducts(ctx, filter)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list products")
		return
	}

	utils.WriteOK(w, http.StatusOK, "products found", "products", productsToJSON(products))
}

// GetProduct возвращает товар с категорией.
// @Summary      Получить товар
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Идентификатор товара"
// @Success      200  {object}  utils.Envelope "product: Product"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	product, err := h.svc.GetProduct(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get product")
		return
	}

	utils.WriteOK(w, http.StatusOK, "product found", "product", ProductEntityToJSON(product))
}

// FeaturedProducts возвращает избранные товары.
// @Summary      Избранные товары
// @Tags         products
// @Produce      json
// @Param        count  path      int  true  "Количество"
// @Success      200    {object}  utils.Envelope "products: []Product"
// @Failure      400    {object}  utils.ErrorResponse "Некорректное количество"
// @Router       /products/get/featured/{count} [get]
func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := strconv.Atoi(chi.URLParam(r, "count"))
	if err != nil || count < 0 {
		utils.WriteError(w, "count must be a non-negative integer", http.StatusBadRequest)
		return
	}

	products, err := h.svc.FeaturedProducts(ctx, count)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list featured products")
		return
	}

	utils.WriteOK(w, http.StatusOK, "products found", "products", productsToJSON(products))
}

// CountProducts возвращает количество товаров.
// @Summary      Количество товаров
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Envelope "count: integer"
// @Router       /products/get/count [get]
func (h *ProductHandler) CountProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.svc.CountProducts(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to count products")
		return
	}

	utils.WriteOK(w, http.StatusOK, "products counted", "count", count)
}

// CreateProduct создает товар.
// @Summary      Создать товар
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name          formData  string  true   "Название"
// @Param        description   formData  string  true   "Описание"
// @Param        price         formData  number  false  "Цена"
// @Param        category      formData  string  true   "ID категории"
// @Param        countInStock  formData  int     false  "Остаток"
// @Param        image         formData  file    true   "Изображение png или jpeg"
// @Success      201  {object}  utils.Envelope "product: Product"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Категория не найдена"
// @Failure      415  {object}  utils.ErrorResponse "Неподдерживаемый тип файла"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	image, _, err := r.FormFile("image")
	if err != nil {
		utils.WriteErrorDetail(w, "invalid request", errMissingImage, http.StatusBadRequest)
		return
	}
	defer image.Close()

	product, err := h.svc.CreateProduct(ctx, ProductFormToEntity("", form), image)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create product")
		return
	}

	utils.WriteOK(w, http.StatusCreated, "product created", "product", ProductEntityToJSON(product))
}

// UpdateProduct изменяет товар. Изображение необязательно.
// @Summary      Изменить товар
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Идентификатор товара"
// @Param        image  formData  file    false  "Новое изображение"
// @Success      200    {object}  utils.Envelope "product: Product"
// @Failure      404    {object}  utils.ErrorResponse "Товар или категория не найдены"
// @Failure      422    {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	var image io.Reader
	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = file
	}

	product, err := h.svc.UpdateProduct(ctx, ProductFormToEntity(id, form), image)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update product")
		return
	}

	utils.WriteOK(w, http.StatusOK, "product updated", "product", ProductEntityToJSON(product))
}

// UpdateGallery заменяет галерею товара.
// @Summary      Загрузить галерею
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Идентификатор товара"
// @Param        images  formData  file    true  "До 10 изображений"
// @Success      200     {object}  utils.Envelope "product: Product"
// @Failure      404     {object}  utils.ErrorResponse "Товар не найден"
// @Failure      415     {object}  utils.ErrorResponse "Неподдерживаемый тип файла"
// @Router       /products/gallery-images/{id} [put]
func (h *ProductHandler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		utils.WriteErrorDetail(w, "invalid multipart form", err, http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 || len(headers) > maxGalleryImages {
		utils.WriteError(w, fmt.Sprintf("between 1 and %d images are required", maxGalleryImages), http.StatusBadRequest)
		return
	}

	images := make([]io.Reader, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			utils.WriteErrorDetail(w, "invalid multipart form", err, http.StatusBadRequest)
			return
		}
		defer f.Close()
		images = append(images, f)
	}

	product, err := h.svc.UpdateGallery(ctx, id, images)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update gallery")
		return
	}

	utils.WriteOK(w, http.StatusOK, "gallery updated", "product", ProductEntityToJSON(product))
}

// DeleteProduct удаляет товар.
// @Summary      Удалить товар
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор товара"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	if err := h.svc.DeleteProduct(ctx, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete product")
		return
	}

	utils.WriteOK(w, http.StatusOK, "product deleted", "", nil)
}

// parseForm reads and validates the product fields of a multipart request.
func (h *ProductHandler) parseForm(w http.ResponseWriter, r *http.Request) (ProductForm, bool) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		utils.WriteErrorDetail(w, "invalid multipart form", err, http.StatusBadRequest)
		return ProductForm{}, false
	}

	form, err := productForm(r.MultipartForm)
	if err != nil {
		utils.WriteErrorDetail(w, "invalid request", err, http.StatusBadRequest)
		return ProductForm{}, false
	}
	if err := h.validate.Struct(form); err != nil {
		utils.WriteValidationError(w, err)
		return ProductForm{}, false
	}
	return form, true
}

func productForm(mf *multipart.Form) (ProductForm, error) {
	value := func(key string) string {
		if mf == nil || len(mf.Value[key]) == 0 {
			return ""
		}
		return strings.TrimSpace(mf.Value[key][0])
	}

	form := ProductForm{
		Name:            value("name"),
		Description:     value("description"),
		RichDescription: value("richDescription"),
		Brand:           value("brand"),
		Category:        value("category"),
	}

	var err error
	if form.Price, err = parseFloat(value("price")); err != nil {
		return form, fmt.Errorf("price: %w", err)
	}
	if form.Rating, err = parseFloat(value("rating")); err != nil {
		return form, fmt.Errorf("rating: %w", err)
	}
	if form.CountInStock, err = parseInt(value("countInStock")); err != nil {
		return form, fmt.Errorf("countInStock: %w", err)
	}
	if form.NumReviews, err = parseInt(value("numReviews")); err != nil {
		return form, fmt.Errorf("numReviews: %w", err)
	}
	if raw := value("isFeatured"); raw != "" {
		if form.IsFeatured, err = strconv.ParseBool(raw); err != nil {
			return form, fmt.Errorf("isFeatured: %w", err)
		}
	}
	return form, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func productsToJSON(products []entities.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	return res
}
