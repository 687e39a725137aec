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
	"github.com/shopspring/decimal"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.OrderDetails, error)
	ListOrders(ctx context.Context) ([]entities.OrderDetails, error)
	ListUserOrders(ctx context.Context, userID string) ([]entities.OrderDetails, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	CountOrders(ctx context.Context) (int, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	authn    Middleware
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, authn Middleware, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		authn:    authn,
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.authn)

		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
		r.Get("/get/userorders/{userid}", h.ListUserOrders)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/", h.ListOrders)
			r.Put("/{id}", h.UpdateOrderStatus)
			r.Delete("/{id}", h.DeleteOrder)
			r.Get("/get/total_sales", h.TotalSales)
			r.Get("/get/count", h.CountOrders)
		})
	})
}

// CreateOrder создает заказ.
// @Summary      Создать заказ
// @Description  Создает позиции заказа, считает сумму по текущим ценам и сохраняет заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  utils.Envelope "order: Order"
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404    {object}  utils.ErrorResponse "Товар не найден"
// @Failure      502    {object}  utils.ErrorResponse "Не удалось создать заказ"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CreateOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorDetail(w, "invalid request body", err, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	claims, _ := middleware.ClaimsFromContext(ctx)
	if body.User == "" {
		body.User = claims.UserID
	}
	if body.User != claims.UserID && !claims.IsAdmin {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderJSONToEntity(body))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteOK(w, http.StatusCreated, "order created", "order", OrderEntityToJSON(order))
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ с покупателем, позициями, товарами и категориями
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  utils.Envelope "order: OrderDetails"
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	claims, _ := middleware.ClaimsFromContext(ctx)
	if !claims.IsAdmin && (order.User == nil || order.User.ID != claims.UserID) {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	utils.WriteOK(w, http.StatusOK, "order found", "order", OrderDetailsEntityToJSON(order))
}

// ListOrders возвращает все заказы.
// @Summary      Список заказов
// @Description  Возвращает все заказы, новые первыми
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Envelope "orders: []OrderDetails"
// @Failure      403  {object}  utils.ErrorResponse "Нужны права администратора"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	utils.WriteOK(w, http.StatusOK, "orders found", "orders", OrderDetailsListToJSON(orders))
}

// ListUserOrders возвращает заказы пользователя.
// @Summary      Заказы пользователя
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        userid  path      string  true  "Идентификатор пользователя"
// @Success      200     {object}  utils.Envelope "orders: []OrderDetails"
// @Failure      403     {object}  utils.ErrorResponse "Чужие заказы"
// @Failure      422     {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Failure      502     {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/get/userorders/{userid} [get]
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userid")

	if err := h.validate.Var(userID, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	claims, _ := middleware.ClaimsFromContext(ctx)
	if !claims.IsAdmin && claims.UserID != userID {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	orders, err := h.svc.ListUserOrders(ctx, userID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list user orders")
		return
	}

	utils.WriteOK(w, http.StatusOK, "orders found", "orders", OrderDetailsListToJSON(orders))
}

// UpdateOrderStatus меняет статус заказа.
// @Summary      Изменить статус заказа
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string               true  "Идентификатор заказа"
// @Param        status  body      UpdateStatusRequest  true  "Новый статус"
// @Success      200     {object}  utils.Envelope "order: Order"
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      422     {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Failure      502     {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	var body UpdateStatusRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorDetail(w, "invalid request body", err, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, id, entities.OrderStatus(body.Status))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update order")
		return
	}

	utils.WriteOK(w, http.StatusOK, "order updated", "order", OrderEntityToJSON(order))
}

// DeleteOrder удаляет заказ и его позиции.
// @Summary      Удалить заказ
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	if err := h.svc.DeleteOrder(ctx, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete order")
		return
	}

	utils.WriteOK(w, http.StatusOK, "order deleted", "", nil)
}

// TotalSales возвращает сумму всех заказов.
// @Summary      Сумма продаж
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Envelope "totalSales: number"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/get/total_sales [get]
func (h *OrderHandler) TotalSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.svc.TotalSales(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get total sales")
		return
	}

	utils.WriteOK(w, http.StatusOK, "total sales", "totalSales", money(total))
}

// CountOrders возвращает количество заказов.
// @Summary      Количество заказов
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Envelope "count: integer"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/get/count [get]
func (h *OrderHandler) CountOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.svc.CountOrders(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to count orders")
		return
	}

	utils.WriteOK(w, http.StatusOK, "orders counted", "count", count)
}
