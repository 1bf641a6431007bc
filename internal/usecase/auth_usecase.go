package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/token"
	"skillio/pkg/errors"
)

// AuthUseCase signs users up. With an AccountCreator the login lives at the identity
// provider and the client signs in there; without one the service issues its own tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	accounts AccountCreator
	issuer   TokenIssuer
	now      func() time.Time
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	logRepo repository.ActivityLogRepository,
	accounts AccountCreator,
	issuer TokenIssuer,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
		accounts: accounts,
		issuer:   issuer,
		now:      time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	City     string
	Role     entity.UserRole
}

type AuthResult struct {
	User      *entity.UserProfile `json:"user"`
	Token     string              `json:"token,omitempty"`
	ExpiresAt *time.Time          `json:"expiresAt,omitempty"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, errors.Conflict("Email already in use")
		}
	}

	id := uuid.New().String()
	if uc.accounts != nil {
		id, err = uc.accounts.CreateUser(ctx, email, input.Password, input.Name)
		if err != nil {
			return nil, errors.Internal("Failed to create user in authentication provider", err)
		}
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	user := &entity.UserProfile{
		ID:         id,
		Name:       input.Name,
		Email:      email,
		Phone:      input.Phone,
		City:       input.City,
		Role:       role,
		JoinedDate: uc.now().Format(service.DateLayout),
		Status:     entity.AccountActive,
		Preferences: entity.Preferences{
			ServiceReminders: true,
		},
	}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.logRepo, "New account registered for "+user.Name, user.Name, "")

	result := &AuthResult{User: user}
	if uc.accounts == nil && uc.issuer != nil {
		tok, exp, err := uc.IssueToken(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		result.Token = tok
		result.ExpiresAt = &exp
	}
	return result, nil
}

// IssueToken signs a user token for an existing profile. Only available when the service
// issues its own tokens.
func (uc *AuthUseCase) IssueToken(ctx context.Context, userID string) (string, time.Time, error) {
	if uc.issuer == nil {
		return "", time.Time{}, errors.Forbidden("Tokens are issued by the identity provider", nil)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", time.Time{}, err
	}
	if user.IsSuspended() {
		return "", time.Time{}, errors.Forbidden("Account is suspended", nil)
	}
	tok, exp, err := uc.issuer.Issue(token.Identity{
		UID:   user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		Kind:  token.KindUser,
	})
	if err != nil {
		return "", time.Time{}, errors.Internal("Failed to issue token", err)
	}
	return tok, exp, nil
}
