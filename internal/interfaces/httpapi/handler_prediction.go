package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

func (h *Handler) UpsertPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	var req upsertPredictionRequest
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

	if err := h.predictionService.Upsert(ctx, principal.UserID, matchID, match.Outcome(req.Pick)); err != nil {
		h.logger.WarnContext(ctx, "upsert prediction failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.GetMineByMatch(ctx, principal.UserID, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(item))
}

func (h *Handler) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.predictionService.Delete(ctx, principal.UserID, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete prediction failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPredictions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	predictions, err := h.predictionService.ListMine(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]predictionDTO, 0, len(predictions))
	for _, item := range predictions {
		items = append(items, predictionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpsertBracketPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertBracketPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	var req upsertBracketPickRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.bracketService.Upsert(ctx, principal.UserID, matchID, req.WinnerTeamID); err != nil {
		h.logger.WarnContext(ctx, "upsert bracket pick failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) ListMyBracketPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyBracketPicks")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	phase := strings.TrimSpace(r.URL.Query().Get("phase"))

	var picks []prediction.BracketPrediction
	var err error
	if phase == "" {
		picks, err = h.bracketService.ListMine(ctx, principal.UserID)
	} else {
		picks, err = h.bracketService.ListMineByPhase(ctx, principal.UserID, phase)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list bracket picks failed", "user_id", principal.UserID, "phase", phase, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]bracketPickDTO, 0, len(picks))
	for _, item := range picks {
		items = append(items, bracketPickToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFavorite")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.favoriteService.Add(ctx, principal.UserID, matchID); err != nil {
		h.logger.WarnContext(ctx, "add favorite failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"status": "added"})
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFavorite")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.favoriteService.Remove(ctx, principal.UserID, matchID); err != nil {
		h.logger.WarnContext(ctx, "remove favorite failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) ListMyFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyFavorites")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	favorites, err := h.favoriteService.ListMine(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list favorites failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]favoriteDTO, 0, len(favorites))
	for _, item := range favorites {
		items = append(items, favoriteDTO{
			MatchID:   item.MatchID,
			CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type upsertPredictionRequest struct {
	Pick string `json:"pick" validate:"required"`
}

type upsertBracketPickRequest struct {
	WinnerTeamID *string `json:"winnerTeamId"`
}

type predictionDTO struct {
	MatchID   string `json:"matchId"`
	Pick      string `json:"pick"`
	UpdatedAt string `json:"updatedAt"`
}

type bracketPickDTO struct {
	MatchID      string  `json:"matchId"`
	WinnerTeamID *string `json:"winnerTeamId"`
	UpdatedAt    string  `json:"updatedAt"`
}

type favoriteDTO struct {
	MatchID   string `json:"matchId"`
	CreatedAt string `json:"createdAt"`
}

func predictionToDTO(v prediction.Prediction) predictionDTO {
	return predictionDTO{
		MatchID:   v.MatchID,
		Pick:      string(v.Pick),
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func bracketPickToDTO(v prediction.BracketPrediction) bracketPickDTO {
	return bracketPickDTO{
		MatchID:      v.MatchID,
		WinnerTeamID: v.WinnerTeamID,
		UpdatedAt:    v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
