package interfaces

import (
	"context"

	"apnaghar/internal/domain/entities"
)

// IPropertyRepository abstracts DynamoDB persistence for Property.
//
// TransitionStatus is a compare-and-swap: the update is conditional on the
// current status equaling from. On condition failure it returns a zero
// Property and a nil error; the caller decides what the lost race means.
// This is the primitive behind the two-buyers-one-unit guarantee.
type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Property, error)
	CountByProjectAndStatus(ctx context.Context, projectID string, status entities.PropertyStatus) (int, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.PropertyStatus, buyerID string) (entities.Property, error)
	AppendMedia(ctx context.Context, id string, photos, videos []entities.MediaEntry) (entities.Property, error)
}

// IMilestoneRepository abstracts DynamoDB persistence for Milestone.
type IMilestoneRepository interface {
	Create(ctx context.Context, m entities.Milestone) (entities.Milestone, error)
	GetByID(ctx context.Context, id string) (entities.Milestone, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Milestone, error)
	UpdateProgress(ctx context.Context, id string, status entities.MilestoneStatus, progress float64) (entities.Milestone, error)
	AppendMedia(ctx context.Context, id string, photos, videos []entities.MediaEntry) (entities.Milestone, error)
}
