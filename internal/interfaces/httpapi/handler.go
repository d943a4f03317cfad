package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

type Handler struct {
	authService        *usecase.AuthService
	matchService       *usecase.MatchService
	teamService        *usecase.TeamService
	predictionService  *usecase.PredictionService
	bracketService     *usecase.BracketService
	favoriteService    *usecase.FavoriteService
	preferencesService *usecase.PreferencesService
	groupService       *usecase.GroupService
	importService      *usecase.ImportService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	predictionService *usecase.PredictionService,
	bracketService *usecase.BracketService,
	favoriteService *usecase.FavoriteService,
	preferencesService *usecase.PreferencesService,
	groupService *usecase.GroupService,
	importService *usecase.ImportService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:        authService,
		matchService:       matchService,
		teamService:        teamService,
		predictionService:  predictionService,
		bracketService:     bracketService,
		favoriteService:    favoriteService,
		preferencesService: preferencesService,
		groupService:       groupService,
		importService:      importService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type matchDTO struct {
	ID         string  `json:"id"`
	HomeTeamID string  `json:"homeTeamId,omitempty"`
	AwayTeamID string  `json:"awayTeamId,omitempty"`
	KickoffAt  string  `json:"kickoffAt"`
	City       string  `json:"city"`
	Stadium    string  `json:"stadium"`
	Phase      string  `json:"phase"`
	GroupLabel *string `json:"groupLabel,omitempty"`
	HomeScore  *int    `json:"homeScore"`
	AwayScore  *int    `json:"awayScore"`
	Finalized  bool    `json:"finalized"`
}

type teamDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FIFACode   string `json:"fifaCode"`
	FlagURL    string `json:"flagUrl,omitempty"`
	GroupLabel string `json:"groupLabel,omitempty"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:         v.ID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		KickoffAt:  v.KickoffAt.UTC().Format(time.RFC3339),
		City:       v.City,
		Stadium:    v.Stadium,
		Phase:      v.Phase,
		GroupLabel: v.GroupLabel,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Finalized:  v.Finalized(),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:         v.ID,
		Name:       v.Name,
		FIFACode:   v.FIFACode,
		FlagURL:    v.FlagURL,
		GroupLabel: v.GroupLabel,
	}
}
