package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/favorite"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

// FavoriteService tracks which matches a user follows.
type FavoriteService struct {
	matchRepo    match.Repository
	favoriteRepo favorite.Repository
}

func NewFavoriteService(matchRepo match.Repository, favoriteRepo favorite.Repository) *FavoriteService {
	return &FavoriteService{
		matchRepo:    matchRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *FavoriteService) Add(ctx context.Context, userID, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.Add")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchID = strings.TrimSpace(matchID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return fmt.Errorf("get match for favorite: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	added, err := s.favoriteRepo.Add(ctx, favorite.Favorite{UserID: userID, MatchID: matchID})
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	if !added {
		return fmt.Errorf("%w: match %s is already a favorite", ErrInvalidInput, matchID)
	}
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.Remove")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchID = strings.TrimSpace(matchID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	removed, err := s.favoriteRepo.Remove(ctx, userID, matchID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: favorite user=%s match=%s", ErrNotFound, userID, matchID)
	}
	return nil
}

func (s *FavoriteService) ListMine(ctx context.Context, userID string) ([]favorite.Favorite, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.ListMine")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return items, nil
}
