package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
	"github.com/TobiasMoreno/wc-2026-be/internal/platform/id"
)

// TokenIssuer mints signed access tokens for authenticated users.
type TokenIssuer interface {
	IssueAccessToken(u user.User) (string, error)
}

// AuthService signs users in and keeps their profile fresh.
type AuthService struct {
	userRepo    user.Repository
	idGen       id.Generator
	issuer      TokenIssuer
	adminEmails map[string]struct{}
}

func NewAuthService(userRepo user.Repository, idGen id.Generator, issuer TokenIssuer, adminEmails []string) *AuthService {
	allowlist := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		allowlist[email] = struct{}{}
	}

	return &AuthService{
		userRepo:    userRepo,
		idGen:       idGen,
		issuer:      issuer,
		adminEmails: allowlist,
	}
}

type LoginResult struct {
	User        user.User
	AccessToken string
}

// Login upserts the account for the given identity and returns a fresh
// access token. Name and picture are refreshed on every sign-in; group
// membership and points are never touched here.
func (s *AuthService) Login(ctx context.Context, email, name, pictureURL string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	pictureURL = strings.TrimSpace(pictureURL)
	if email == "" || !strings.Contains(email, "@") {
		return LoginResult{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if name == "" {
		return LoginResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		userID, idErr := s.idGen.NewID()
		if idErr != nil {
			return LoginResult{}, fmt.Errorf("generate user id: %w", idErr)
		}
		item = user.User{ID: userID, Email: email}
	}

	item.Name = name
	item.PictureURL = pictureURL
	item.Role = user.RoleUser
	if _, ok := s.adminEmails[email]; ok {
		item.Role = user.RoleAdmin
	}

	if err := s.userRepo.Upsert(ctx, item); err != nil {
		return LoginResult{}, fmt.Errorf("upsert user: %w", err)
	}

	token, err := s.issuer.IssueAccessToken(item)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return LoginResult{User: item, AccessToken: token}, nil
}

// GetProfile returns the stored account for an authenticated caller.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.GetProfile")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return item, nil
}
