package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

func (h *Handler) GetMyPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPreferences")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	item, err := h.preferencesService.Get(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get preferences failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preferencesToDTO(item))
}

func (h *Handler) UpdateMyPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMyPreferences")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req updatePreferencesRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.preferencesService.Update(ctx, principal.UserID, usecase.PreferencesUpdate{
		Timezone:             req.Timezone,
		Language:             req.Language,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update preferences failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preferencesToDTO(item))
}

type updatePreferencesRequest struct {
	Timezone             *string `json:"timezone"`
	Language             *string `json:"language"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
}

type preferencesDTO struct {
	Timezone             string `json:"timezone"`
	Language             string `json:"language"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	UpdatedAt            string `json:"updatedAt,omitempty"`
}

func preferencesToDTO(v preferences.Preferences) preferencesDTO {
	updatedAt := ""
	if !v.UpdatedAt.IsZero() {
		updatedAt = v.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return preferencesDTO{
		Timezone:             v.Timezone,
		Language:             v.Language,
		NotificationsEnabled: v.NotificationsEnabled,
		UpdatedAt:            updatedAt,
	}
}
