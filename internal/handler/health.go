package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With(slog.String("handler", "health")),
		db:     db,
	}
}

func (h *HealthHandler) Init(r chi.Router) {
	r.Get("/healthz", h.Health)
}

// Health проверяет доступность базы.
// @Summary      Проверка состояния
// @Tags         health
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Failure      502  {object}  utils.ErrorResponse "База недоступна"
// @Router       /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database ping failed", slog.Any("error", err))
		utils.WriteErrorDetail(w, "database unavailable", err, http.StatusBadGateway)
		return
	}

	utils.WriteOK(w, http.StatusOK, "ok", "", nil)
}
