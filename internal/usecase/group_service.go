package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
	"github.com/TobiasMoreno/wc-2026-be/internal/platform/id"
)

// GroupService manages friend groups and their rankings.
type GroupService struct {
	groupRepo group.Repository
	userRepo  user.Repository
	idGen     id.Generator
}

func NewGroupService(groupRepo group.Repository, userRepo user.Repository, idGen id.Generator) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		idGen:     idGen,
	}
}

// Create registers a new group guarded by a shared password and puts
// the creator into it.
func (s *GroupService) Create(ctx context.Context, creatorID, name, password string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Create")
	defer span.End()

	creatorID = strings.TrimSpace(creatorID)
	name = strings.TrimSpace(name)
	if creatorID == "" {
		return group.Group{}, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	if name == "" {
		return group.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}
	if len(password) < 4 {
		return group.Group{}, fmt.Errorf("%w: group password must be at least 4 characters", ErrInvalidInput)
	}

	if _, exists, err := s.groupRepo.GetByName(ctx, name); err != nil {
		return group.Group{}, fmt.Errorf("check group name: %w", err)
	} else if exists {
		return group.Group{}, fmt.Errorf("%w: group name %q is taken", ErrInvalidInput, name)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return group.Group{}, fmt.Errorf("hash group password: %w", err)
	}

	groupID, err := s.idGen.NewID()
	if err != nil {
		return group.Group{}, fmt.Errorf("generate group id: %w", err)
	}

	item := group.Group{
		ID:           groupID,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.groupRepo.Create(ctx, item); err != nil {
		return group.Group{}, fmt.Errorf("create group: %w", err)
	}

	if err := s.userRepo.AssignGroup(ctx, creatorID, groupID); err != nil {
		return group.Group{}, fmt.Errorf("assign creator to group: %w", err)
	}
	return item, nil
}

// Join moves the caller into an existing group after checking the
// shared password.
func (s *GroupService) Join(ctx context.Context, userID, name, password string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Join")
	defer span.End()

	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	if userID == "" {
		return group.Group{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if name == "" {
		return group.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	item, exists, err := s.groupRepo.GetByName(ctx, name)
	if err != nil {
		return group.Group{}, fmt.Errorf("get group by name: %w", err)
	}
	if !exists {
		return group.Group{}, fmt.Errorf("%w: group=%s", ErrNotFound, name)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)); err != nil {
		return group.Group{}, fmt.Errorf("%w: wrong group password", ErrUnauthorized)
	}

	if err := s.userRepo.AssignGroup(ctx, userID, item.ID); err != nil {
		return group.Group{}, fmt.Errorf("assign user to group: %w", err)
	}
	return item, nil
}

// GetRanking returns a fresh standings snapshot for the caller's own
// group, ordered by points and tie-broken by name. Positions are
// sequential; two users on equal points never share one.
func (s *GroupService) GetRanking(ctx context.Context, callerID, groupID string) ([]group.RankingEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.GetRanking")
	defer span.End()

	callerID = strings.TrimSpace(callerID)
	groupID = strings.TrimSpace(groupID)
	if callerID == "" {
		return nil, fmt.Errorf("%w: caller id is required", ErrInvalidInput)
	}
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	caller, exists, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("get caller: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: user=%s", ErrNotFound, callerID)
	}
	if caller.GroupID == nil || *caller.GroupID != groupID {
		return nil, fmt.Errorf("%w: caller does not belong to group %s", ErrInvalidInput, groupID)
	}

	if _, exists, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	members, err := s.userRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}

	sort.Slice(members, func(i, j int) bool {
		if members[i].TotalPoints != members[j].TotalPoints {
			return members[i].TotalPoints > members[j].TotalPoints
		}
		return members[i].Name < members[j].Name
	})

	entries := make([]group.RankingEntry, 0, len(members))
	for i, member := range members {
		entries = append(entries, group.RankingEntry{
			Position:    i + 1,
			UserID:      member.ID,
			Email:       member.Email,
			Name:        member.Name,
			PictureURL:  member.PictureURL,
			TotalPoints: member.TotalPoints,
		})
	}
	return entries, nil
}
