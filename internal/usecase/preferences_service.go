package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
)

// PreferencesService serves per-user settings, falling back to the
// defaults until the user saves their own.
type PreferencesService struct {
	preferencesRepo preferences.Repository
}

func NewPreferencesService(preferencesRepo preferences.Repository) *PreferencesService {
	return &PreferencesService{preferencesRepo: preferencesRepo}
}

func (s *PreferencesService) Get(ctx context.Context, userID string) (preferences.Preferences, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferencesService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return preferences.Preferences{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.preferencesRepo.GetByUser(ctx, userID)
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	if !exists {
		return preferences.Default(userID), nil
	}
	return item, nil
}

// PreferencesUpdate carries the fields to change; nil fields keep
// their stored value.
type PreferencesUpdate struct {
	Timezone             *string
	Language             *string
	NotificationsEnabled *bool
}

func (s *PreferencesService) Update(ctx context.Context, userID string, update PreferencesUpdate) (preferences.Preferences, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferencesService.Update")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return preferences.Preferences{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.preferencesRepo.GetByUser(ctx, userID)
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("get preferences for update: %w", err)
	}
	if !exists {
		item = preferences.Default(userID)
	}

	if update.Timezone != nil {
		tz := strings.TrimSpace(*update.Timezone)
		if _, err := time.LoadLocation(tz); err != nil {
			return preferences.Preferences{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, tz)
		}
		item.Timezone = tz
	}
	if update.Language != nil {
		lang := strings.ToLower(strings.TrimSpace(*update.Language))
		if lang == "" {
			return preferences.Preferences{}, fmt.Errorf("%w: language cannot be empty", ErrInvalidInput)
		}
		item.Language = lang
	}
	if update.NotificationsEnabled != nil {
		item.NotificationsEnabled = *update.NotificationsEnabled
	}

	if err := s.preferencesRepo.Upsert(ctx, item); err != nil {
		return preferences.Preferences{}, fmt.Errorf("upsert preferences: %w", err)
	}
	return item, nil
}
