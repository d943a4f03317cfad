package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req groupCredentialsRequest
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

	created, err := h.groupService.Create(ctx, principal.UserID, req.Name, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "create group failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupToDTO(created))
}

func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinGroup")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req groupCredentialsRequest
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

	joined, err := h.groupService.Join(ctx, principal.UserID, req.Name, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "join group failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupToDTO(joined))
}

func (h *Handler) GetGroupRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroupRanking")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	groupID := r.PathValue("groupID")
	ranking, err := h.groupService.GetRanking(ctx, principal.UserID, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "user_id", principal.UserID, "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingEntryDTO, 0, len(ranking))
	for _, item := range ranking {
		items = append(items, rankingEntryDTO{
			Position:    item.Position,
			UserID:      item.UserID,
			UserEmail:   item.Email,
			Name:        item.Name,
			PictureURL:  item.PictureURL,
			TotalPoints: item.TotalPoints,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type groupCredentialsRequest struct {
	Name     string `json:"name" validate:"required,max=80"`
	Password string `json:"password" validate:"required,min=4"`
}

type groupDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rankingEntryDTO struct {
	Position    int    `json:"position"`
	UserID      string `json:"userId"`
	UserEmail   string `json:"userEmail"`
	Name        string `json:"name"`
	PictureURL  string `json:"pictureUrl,omitempty"`
	TotalPoints int    `json:"totalPoints"`
}

func groupToDTO(v group.Group) groupDTO {
	return groupDTO{ID: v.ID, Name: v.Name}
}
