package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
)

func boolPtr(v bool) *bool { return &v }

func TestPreferencesService_Get_DefaultsUntilSaved(t *testing.T) {
	t.Parallel()

	service := NewPreferencesService(&stubPreferencesRepository{})

	got, err := service.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Language != "es" || !got.NotificationsEnabled || got.Timezone != "America/Argentina/Buenos_Aires" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestPreferencesService_Update_PartialFields(t *testing.T) {
	t.Parallel()

	repo := &stubPreferencesRepository{byUser: map[string]preferences.Preferences{
		"u1": {UserID: "u1", Timezone: "America/Mexico_City", Language: "es", NotificationsEnabled: true},
	}}
	service := NewPreferencesService(repo)

	got, err := service.Update(context.Background(), "u1", PreferencesUpdate{
		NotificationsEnabled: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.NotificationsEnabled {
		t.Fatal("notifications must be off after update")
	}
	if got.Timezone != "America/Mexico_City" || got.Language != "es" {
		t.Fatalf("untouched fields must keep stored values: %+v", got)
	}
}

func TestPreferencesService_Update_RejectsUnknownTimezone(t *testing.T) {
	t.Parallel()

	service := NewPreferencesService(&stubPreferencesRepository{})

	_, err := service.Update(context.Background(), "u1", PreferencesUpdate{Timezone: strPtr("Mars/Olympus_Mons")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
