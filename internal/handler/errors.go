package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/pkg/utils"
)

var notFoundErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrOrderItemNotFound,
	entities.ErrProductNotFound,
	entities.ErrCategoryNotFound,
	entities.ErrUserNotFound,
}

// writeServiceError translates a service error into the envelope.
// Anything unrecognised is a persistence failure and is answered with 502.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, message string) {
	var ce *entities.OrderCreationError
	if errors.As(err, &ce) {
		logger.ErrorContext(ctx, message,
			slog.Any("error", err),
			slog.String("stage", ce.Stage),
			slog.Int("line", ce.Line),
			slog.Any("orphans", ce.Orphans),
		)
		utils.WriteErrorDetail(w, "failed to create order", errors.New(ce.Summary()), http.StatusBadGateway)
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			writeKnownError(w, target, err, http.StatusNotFound)
			return
		}
	}

	switch {
	case errors.Is(err, entities.ErrInvalidOrder), errors.Is(err, entities.ErrInvalidQuantity):
		utils.WriteErrorDetail(w, "invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmailTaken):
		writeKnownError(w, entities.ErrEmailTaken, err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidCredentials):
		writeKnownError(w, entities.ErrInvalidCredentials, err, http.StatusUnauthorized)
	case errors.Is(err, entities.ErrUnsupportedMedia):
		writeKnownError(w, entities.ErrUnsupportedMedia, err, http.StatusUnsupportedMediaType)
	default:
		logger.ErrorContext(ctx, message, slog.Any("error", err))
		utils.WriteError(w, message, http.StatusBadGateway)
	}
}

// writeKnownError uses the sentinel text as the message and keeps the
// wrapped text only when it adds something.
func writeKnownError(w http.ResponseWriter, target, err error, code int) {
	if err.Error() == target.Error() {
		utils.WriteError(w, target.Error(), code)
		return
	}
	utils.WriteErrorDetail(w, target.Error(), err, code)
}
