package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/token"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
)

type AdminAuthUseCase struct {
	adminRepo repository.AdminRepository
	logRepo   repository.ActivityLogRepository
	issuer    TokenIssuer
	now       func() time.Time
}

func NewAdminAuthUseCase(adminRepo repository.AdminRepository, logRepo repository.ActivityLogRepository, issuer TokenIssuer) *AdminAuthUseCase {
	return &AdminAuthUseCase{
		adminRepo: adminRepo,
		logRepo:   logRepo,
		issuer:    issuer,
		now:       time.Now,
	}
}

type AdminSession struct {
	Token        string               `json:"token"`
	ExpiresAt    time.Time            `json:"expiresAt"`
	Username     string               `json:"username"`
	Role         entity.AdminRole     `json:"role"`
	Capabilities []service.Capability `json:"capabilities"`
}

// Login checks the password and issues an admin token. Unknown usernames and wrong
// passwords produce the same error.
func (uc *AdminAuthUseCase) Login(ctx context.Context, username, password string) (*AdminSession, error) {
	invalid := errors.Unauthorized("Invalid username or password", nil)

	admin, err := uc.adminRepo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, invalid
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	tok, exp, err := uc.issuer.Issue(token.Identity{
		UID:  admin.ID,
		Name: admin.Username,
		Role: string(admin.Role),
		Kind: token.KindAdmin,
	})
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Admin %s signed in", admin.Username), admin.Username, "")
	return &AdminSession{
		Token:        tok,
		ExpiresAt:    exp,
		Username:     admin.Username,
		Role:         admin.Role,
		Capabilities: service.Capabilities(admin.Role),
	}, nil
}

// SeedOwner makes sure a Super Owner exists. A pre-computed hash wins over a plain
// password; with neither, seeding is skipped.
func (uc *AdminAuthUseCase) SeedOwner(ctx context.Context, username, password, passwordHash string) error {
	if username == "" || (password == "" && passwordHash == "") {
		logger.Warn("no owner credentials configured, admin login is disabled until an account exists")
		return nil
	}
	username = strings.ToLower(username)

	if _, err := uc.adminRepo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	hash := passwordHash
	if hash == "" {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return errors.Internal("Failed to hash owner password", err)
		}
		hash = string(b)
	}

	err := uc.adminRepo.Create(ctx, &entity.AdminAccount{
		ID:           newReference("ADM-"),
		Username:     username,
		PasswordHash: hash,
		Role:         entity.AdminSuperOwner,
		CreatedAt:    uc.now(),
	})
	if err != nil && !errors.Is(err, "CONFLICT") {
		return err
	}
	logger.Info("seeded owner account %s", username)
	return nil
}

type CreateAdminInput struct {
	Username string
	Password string
	Role     entity.AdminRole
}

func (uc *AdminAuthUseCase) CreateAdmin(ctx context.Context, actor Actor, input CreateAdminInput) (*entity.AdminAccount, error) {
	if !service.RoleHas(actor.Role, service.CapManageAdmins) {
		return nil, errors.Forbidden("Only owners can create admin accounts", nil)
	}
	if !input.Role.Valid() {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown admin role %q", input.Role), nil)
	}
	if len(input.Password) < 8 {
		return nil, errors.BadRequest("Password must be at least 8 characters", nil)
	}
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" {
		return nil, errors.BadRequest("Username is required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}
	admin := &entity.AdminAccount{
		ID:           newReference("ADM-"),
		Username:     username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    uc.now(),
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Admin account %s created with role %s", admin.Username, admin.Role), actor.label(), "")
	return admin, nil
}

func (uc *AdminAuthUseCase) List(ctx context.Context) ([]*entity.AdminAccount, error) {
	return uc.adminRepo.List(ctx)
}

// GetAdmin resolves a token subject back to its account so role changes take effect
// without waiting for the token to expire.
func (uc *AdminAuthUseCase) GetAdmin(ctx context.Context, id string) (*entity.AdminAccount, error) {
	return uc.adminRepo.GetByID(ctx, id)
}
