package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

func strPtr(v string) *string { return &v }

func TestGroupService_Create(t *testing.T) {
	t.Parallel()

	userRepo := &stubUserRepository{byID: map[string]user.User{
		"u1": {ID: "u1", Email: "ana@example.com", Name: "Ana"},
	}}
	groupRepo := &stubGroupRepository{}
	service := NewGroupService(groupRepo, userRepo, &sequenceIDGenerator{})

	created, err := service.Create(context.Background(), "u1", "La Banda", "golazo")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Name != "La Banda" || created.ID == "" {
		t.Fatalf("unexpected group: %+v", created)
	}
	if created.PasswordHash == "golazo" {
		t.Fatal("password must be stored hashed")
	}
	if member := userRepo.byID["u1"]; member.GroupID == nil || *member.GroupID != created.ID {
		t.Fatalf("creator must join the new group: %+v", member)
	}

	if _, err := service.Create(context.Background(), "u1", "La Banda", "otra"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected duplicate name rejection, got %v", err)
	}
	if _, err := service.Create(context.Background(), "u1", "Corta", "abc"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected short password rejection, got %v", err)
	}
}

func TestGroupService_Join(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("golazo"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	groupRepo := &stubGroupRepository{byID: map[string]group.Group{
		"g1": {ID: "g1", Name: "La Banda", PasswordHash: string(hash)},
	}}
	userRepo := &stubUserRepository{byID: map[string]user.User{
		"u2": {ID: "u2", Email: "bruno@example.com", Name: "Bruno"},
	}}
	service := NewGroupService(groupRepo, userRepo, &sequenceIDGenerator{})

	if _, err := service.Join(context.Background(), "u2", "La Banda", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on bad password, got %v", err)
	}
	if _, err := service.Join(context.Background(), "u2", "Fantasma", "golazo"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on unknown group, got %v", err)
	}

	joined, err := service.Join(context.Background(), "u2", "La Banda", "golazo")
	if err != nil {
		t.Fatalf("Join error: %v", err)
	}
	if joined.ID != "g1" {
		t.Fatalf("unexpected group: %+v", joined)
	}
	if member := userRepo.byID["u2"]; member.GroupID == nil || *member.GroupID != "g1" {
		t.Fatalf("user must be assigned to the group: %+v", member)
	}
}

func TestGroupService_GetRanking(t *testing.T) {
	t.Parallel()

	groupRepo := &stubGroupRepository{byID: map[string]group.Group{
		"g1": {ID: "g1", Name: "La Banda"},
	}}
	userRepo := &stubUserRepository{byID: map[string]user.User{
		"u-a": {ID: "u-a", Email: "ana@example.com", Name: "Ana", GroupID: strPtr("g1"), TotalPoints: 10},
		"u-b": {ID: "u-b", Email: "bruno@example.com", Name: "Bruno", GroupID: strPtr("g1"), TotalPoints: 10},
		"u-c": {ID: "u-c", Email: "carla@example.com", Name: "Carla", GroupID: strPtr("g1"), TotalPoints: 15},
		"u-x": {ID: "u-x", Email: "xavi@example.com", Name: "Xavi", GroupID: strPtr("g2"), TotalPoints: 99},
	}}
	service := NewGroupService(groupRepo, userRepo, &sequenceIDGenerator{})

	got, err := service.GetRanking(context.Background(), "u-a", "g1")
	if err != nil {
		t.Fatalf("GetRanking error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].UserID != "u-c" || got[0].Position != 1 || got[0].TotalPoints != 15 {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[0].Email != "carla@example.com" || got[0].Name != "Carla" {
		t.Fatalf("entry must carry the member's email and name: %+v", got[0])
	}
	// Equal points fall back to name order and never share a position.
	if got[1].UserID != "u-a" || got[1].Position != 2 {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
	if got[2].UserID != "u-b" || got[2].Position != 3 {
		t.Fatalf("unexpected third entry: %+v", got[2])
	}
}

func TestGroupService_GetRanking_RejectsOutsiders(t *testing.T) {
	t.Parallel()

	groupRepo := &stubGroupRepository{byID: map[string]group.Group{
		"g1": {ID: "g1", Name: "La Banda"},
	}}
	userRepo := &stubUserRepository{byID: map[string]user.User{
		"u-x": {ID: "u-x", Name: "Xavi", GroupID: strPtr("g2")},
		"u-n": {ID: "u-n", Name: "Nadia"},
	}}
	service := NewGroupService(groupRepo, userRepo, &sequenceIDGenerator{})

	if _, err := service.GetRanking(context.Background(), "u-x", "g1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected rejection for member of another group, got %v", err)
	}
	if _, err := service.GetRanking(context.Background(), "u-n", "g1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected rejection for user without group, got %v", err)
	}
}
