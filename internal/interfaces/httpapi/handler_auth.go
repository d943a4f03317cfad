package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
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

	result, err := h.authService.Login(ctx, req.Email, req.Name, req.PictureURL)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginResponseDTO{
		AccessToken: result.AccessToken,
		User:        userToDTO(result.User),
	})
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	profile, err := h.authService.GetProfile(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(profile))
}

type loginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required,max=120"`
	PictureURL string `json:"pictureUrl" validate:"omitempty,url"`
}

type loginResponseDTO struct {
	AccessToken string  `json:"accessToken"`
	User        userDTO `json:"user"`
}

type userDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	PictureURL  string  `json:"pictureUrl,omitempty"`
	Role        string  `json:"role"`
	GroupID     *string `json:"groupId"`
	TotalPoints int     `json:"totalPoints"`
	CreatedAt   string  `json:"createdAt"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:          v.ID,
		Email:       v.Email,
		Name:        v.Name,
		PictureURL:  v.PictureURL,
		Role:        v.Role,
		GroupID:     v.GroupID,
		TotalPoints: v.TotalPoints,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
