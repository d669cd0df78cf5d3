package interfaces

import (
	"context"

	"apnaghar/internal/domain/entities"
)

// IPrincipalRepository abstracts DynamoDB persistence for Principal.
// GetByToken resolves the opaque bearer credential to a principal row.
type IPrincipalRepository interface {
	Create(ctx context.Context, p entities.Principal) (entities.Principal, error)
	GetByID(ctx context.Context, id string) (entities.Principal, error)
	GetByToken(ctx context.Context, token string) (entities.Principal, error)
}

// IDeveloperRepository abstracts DynamoDB persistence for Developer.
type IDeveloperRepository interface {
	Create(ctx context.Context, d entities.Developer) (entities.Developer, error)
	GetByID(ctx context.Context, id string) (entities.Developer, error)
	GetByPrincipalID(ctx context.Context, principalID string) (entities.Developer, error)
}
