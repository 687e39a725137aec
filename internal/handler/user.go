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

type UserService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	CreateUser(ctx context.Context, u entities.User, password string) (entities.User, error)
	UpdateUser(ctx context.Context, u entities.User, password string) (entities.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type UserHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	authn    Middleware
	svc      UserService
}

func NewUserHandler(logger *slog.Logger, authn Middleware, svc UserService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "user")),
		validate: validator.New(),
		authn:    authn,
		svc:      svc,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authn)

			r.Put("/{id}", h.UpdateUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/", h.ListUsers)
				r.Post("/", h.CreateUser)
				r.Get("/{id}", h.GetUser)
				r.Delete("/{id}", h.DeleteUser)
				r.Get("/get/count", h.CountUsers)
			})
		})
	})
}

// ListUsers возвращает всех пользователей.
// @Summary      Список пользователей
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Envelope "users: []User"
// @Failure      403  {object}  utils.ErrorResponse "Нужны права администратора"
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list users")
		return
	}

	res := make([]User, 0, len(users))
	for _, u := range users {
		res = append(res, UserEntityToJSON(u))
	}
	utils.WriteOK(w, http.StatusOK, "users found", "users", res)
}

// GetUser возвращает пользователя без пароля.
// @Summary      Получить пользователя
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор пользователя"
// @Success      200  {object}  utils.Envelope "user: User"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	user, err := h.svc.GetUser(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get user")
		return
	}

	utils.WriteOK(w, http.StatusOK, "user found", "user", UserEntityToJSON(user))
}

// CreateUser создает пользователя от имени администратора.
// @Summary      Создать пользователя
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user  body      UserRequest  true  "Пользователь"
// @Success      201   {object}  utils.Envelope "user: User"
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409   {object}  utils.ErrorResponse "Email уже занят"
// @Router       /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, true)
}

// Register регистрирует покупателя.
// @Summary      Регистрация
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      UserRequest  true  "Пользователь"
// @Success      201   {object}  utils.Envelope "user: User"
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409   {object}  utils.ErrorResponse "Email уже занят"
// @Router       /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, false)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request, byAdmin bool) {
	ctx := r.Context()

	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.validate.Var(body.Password, "required,min=6"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if !byAdmin {
		body.IsAdmin = false
	}

	user, err := h.svc.CreateUser(ctx, UserJSONToEntity("", body), body.Password)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create user")
		return
	}

	utils.WriteOK(w, http.StatusCreated, "user created", "user", UserEntityToJSON(user))
}

// UpdateUser изменяет пользователя. Пароль необязателен.
// @Summary      Изменить пользователя
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Идентификатор пользователя"
// @Param        user  body      UserRequest  true  "Пользователь"
// @Success      200   {object}  utils.Envelope "user: User"
// @Failure      403   {object}  utils.ErrorResponse "Чужой профиль"
// @Failure      404   {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      422   {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	claims, _ := middleware.ClaimsFromContext(ctx)
	if !claims.IsAdmin && claims.UserID != id {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	if body.Password != "" {
		if err := h.validate.Var(body.Password, "min=6"); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}
	if !claims.IsAdmin {
		body.IsAdmin = false
	}

	user, err := h.svc.UpdateUser(ctx, UserJSONToEntity(id, body), body.Password)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update user")
		return
	}

	utils.WriteOK(w, http.StatusOK, "user updated", "user", UserEntityToJSON(user))
}

// Login выдает токен.
// @Summary      Вход
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Учетные данные"
// @Success      200          {object}  utils.Envelope "user: email, token: string"
// @Failure      401          {object}  utils.ErrorResponse "Неверный пароль"
// @Failure      404          {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body LoginRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorDetail(w, "invalid request body", err, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, err := h.svc.Login(ctx, body.Email, body.Password)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to login")
		return
	}

	env := utils.NewEnvelope(http.StatusOK, "user authenticated").
		With("user", body.Email).
		With("token", token)
	utils.WriteJSON(w, env, http.StatusOK)
}

// DeleteUser удаляет пользователя.
// @Summary      Удалить пользователя
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор пользователя"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Некорректный ID"
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteInvalidID(w, err)
		return
	}

	if err := h.svc.DeleteUser(ctx, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete user")
		return
	}

	utils.WriteOK(w, http.StatusOK, "user deleted", "", nil)
}

// CountUsers возвращает количество пользователей.
// @Summary      Количество пользователей
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Envelope "count: integer"
// @Router       /users/get/count [get]
func (h *UserHandler) CountUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.svc.CountUsers(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to count users")
		return
	}

	utils.WriteOK(w, http.StatusOK, "users counted", "count", count)
}

func (h *UserHandler) decode(w http.ResponseWriter, r *http.Request) (UserRequest, bool) {
	var body UserRequest
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
