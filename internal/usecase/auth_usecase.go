package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// IAuthUseCase resolves opaque bearer credentials to principals and answers
// ownership questions. Authentication itself (issuing tokens) is outside the
// core; the repository row is the source of truth.
type IAuthUseCase interface {
	Authenticate(ctx context.Context, token string) (entities.Principal, error)
	RequireRole(p entities.Principal, role entities.Role) error
	OwnsProperty(ctx context.Context, p entities.Principal, property entities.Property) (bool, error)
	DeveloperFor(ctx context.Context, p entities.Principal) (entities.Developer, error)
}

type AuthUseCase struct {
	principals interfaces.IPrincipalRepository
	developers interfaces.IDeveloperRepository
	projects   interfaces.IProjectRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(principals interfaces.IPrincipalRepository, developers interfaces.IDeveloperRepository, projects interfaces.IProjectRepository) *AuthUseCase {
	return &AuthUseCase{principals: principals, developers: developers, projects: projects}
}

// Authenticate resolves a bearer token. An empty token yields an anonymous
// principal with no error; unknown tokens yield ErrUnauthorized.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Principal{}, nil
	}

	p, err := u.principals.GetByToken(ctx, token)
	if err != nil {
		log.Printf("[auth][usecase] token lookup failed err=%v", err)
		return entities.Principal{}, err
	}
	if p.IsAnonymous() {
		return entities.Principal{}, ErrUnauthorized
	}
	return p, nil
}

// RequireRole distinguishes missing credentials (Unauthorized) from valid
// credentials with the wrong role (Forbidden). Staff passes every check.
func (u *AuthUseCase) RequireRole(p entities.Principal, role entities.Role) error {
	if p.IsAnonymous() {
		return ErrUnauthorized
	}
	if p.Role == entities.RoleStaff || p.Role == role {
		return nil
	}
	return ErrForbidden
}

// OwnsProperty reports whether p is the property's buyer or the developer of
// the property's project.
func (u *AuthUseCase) OwnsProperty(ctx context.Context, p entities.Principal, property entities.Property) (bool, error) {
	if p.IsAnonymous() {
		return false, nil
	}
	if property.BuyerID != "" && property.BuyerID == p.ID {
		return true, nil
	}

	dev, err := u.DeveloperFor(ctx, p)
	if err != nil || dev.ID == "" {
		return false, err
	}
	project, err := u.projects.GetByID(ctx, property.ProjectID)
	if err != nil {
		return false, err
	}
	return project.ID != "" && project.DeveloperID == dev.ID, nil
}

// DeveloperFor resolves the developer profile owned by a builder principal.
// Returns a zero Developer when the principal has none.
func (u *AuthUseCase) DeveloperFor(ctx context.Context, p entities.Principal) (entities.Developer, error) {
	if p.IsAnonymous() || p.Role != entities.RoleBuilder {
		return entities.Developer{}, nil
	}
	return u.developers.GetByPrincipalID(ctx, p.ID)
}
