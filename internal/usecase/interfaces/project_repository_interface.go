package interfaces

import (
	"context"

	"apnaghar/internal/domain/entities"
)

// ProjectFilter is the recognized filter set for project listings. Nil
// pointer fields are "no constraint".
type ProjectFilter struct {
	Status        entities.ProjectStatus
	ProjectType   string
	City          string
	DeveloperID   string
	Verified      *bool
	MinPrice      *float64
	MaxPrice      *float64
	PropertyTypes []string
}

// ProjectOrdering names a recognized listing order.
type ProjectOrdering string

const (
	OrderByStartingPrice      ProjectOrdering = "starting_price"
	OrderByCreatedAt          ProjectOrdering = "created_at"
	OrderByExpectedCompletion ProjectOrdering = "expected_completion"
	OrderByVerificationScore  ProjectOrdering = "verification_score"
	OrderByViewsCount         ProjectOrdering = "views_count"
	OrderByPopular            ProjectOrdering = "popular"
)

// Page is 1-based request pagination.
type Page struct {
	Number int
	Size   int
}

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// List applies the filter at scan time; ordering and pagination are the
// usecase's concern. SetUnitCounts persists the recomputed materialized
// counters; IncrementViews adds exactly one view.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]entities.Project, error)
	IncrementViews(ctx context.Context, id string) error
	SetUnitCounts(ctx context.Context, id string, total, available int) (entities.Project, error)
}
