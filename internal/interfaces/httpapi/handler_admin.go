package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

func (h *Handler) FinalizeMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req finalizeResultRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.FinalizeResult(ctx, matchID, *req.HomeScore, *req.AwayScore); err != nil {
		h.logger.ErrorContext(ctx, "finalize match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetByID(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ImportSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportSchedule")
	defer span.End()

	result, err := h.importService.ImportSchedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "schedule import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// Scores are pointers so an absent field fails validation instead of
// defaulting to 0-0.
type finalizeResultRequest struct {
	HomeScore *int `json:"homeScore" validate:"required,min=0"`
	AwayScore *int `json:"awayScore" validate:"required,min=0"`
}
