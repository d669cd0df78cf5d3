package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrPropertyNotFound         = errors.New("property not found")
	ErrMilestoneNotFound        = errors.New("milestone not found")
	ErrDeveloperNotFound        = errors.New("developer not found")
	ErrDeveloperProfileRequired = errors.New("developer profile required")
	ErrInvalidProjectInput      = errors.New("invalid project input")
	ErrInvalidPropertyInput     = errors.New("invalid property input")
	ErrInvalidMilestoneInput    = errors.New("invalid milestone input")
	ErrDuplicateUnitNumber      = errors.New("duplicate unit number")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CreateProjectInput struct {
	Name               string
	Description        string
	ProjectType        string
	City               string
	Locality           string
	Status             entities.ProjectStatus
	StartingPrice      float64
	PropertyTypes      []string
	ExpectedCompletion time.Time
}

type CreatePropertyInput struct {
	UnitNumber   string
	Floor        int
	PropertyType string
	Price        float64
}

type CreateMilestoneInput struct {
	Name        string
	Description string
	PhaseNumber int
}

// ICatalogUseCase is the catalog store: project/property/milestone persistence
// and query, plus the derived-counter maintenance invoked by the booking
// engine through MutatePropertyStatus.
type ICatalogUseCase interface {
	CreateProject(ctx context.Context, p entities.Principal, in CreateProjectInput) (entities.Project, error)
	ListProjects(ctx context.Context, filter interfaces.ProjectFilter, ordering interfaces.ProjectOrdering, page interfaces.Page) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	GetDeveloper(ctx context.Context, id string) (entities.Developer, error)
	CreateProperty(ctx context.Context, p entities.Principal, projectID string, in CreatePropertyInput) (entities.Property, error)
	CreateMilestone(ctx context.Context, p entities.Principal, projectID string, in CreateMilestoneInput) (entities.Milestone, error)
	ListProperties(ctx context.Context, p entities.Principal, projectID string) ([]entities.Property, error)
	ListMilestones(ctx context.Context, p entities.Principal, projectID string) ([]entities.Milestone, error)
	ListUpdates(ctx context.Context, p entities.Principal, projectID string) ([]entities.ConstructionUpdate, error)
	MutatePropertyStatus(ctx context.Context, propertyID string, from, to entities.PropertyStatus, buyerID string) (entities.Property, error)
}

type CatalogUseCase struct {
	projects   interfaces.IProjectRepository
	properties interfaces.IPropertyRepository
	milestones interfaces.IMilestoneRepository
	developers interfaces.IDeveloperRepository
	updates    interfaces.IUpdateRepository
	auth       IAuthUseCase
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(projects interfaces.IProjectRepository, properties interfaces.IPropertyRepository, milestones interfaces.IMilestoneRepository, developers interfaces.IDeveloperRepository, updates interfaces.IUpdateRepository, auth IAuthUseCase) *CatalogUseCase {
	return &CatalogUseCase{
		projects:   projects,
		properties: properties,
		milestones: milestones,
		developers: developers,
		updates:    updates,
		auth:       auth,
	}
}

func (u *CatalogUseCase) CreateProject(ctx context.Context, p entities.Principal, in CreateProjectInput) (entities.Project, error) {
	if err := u.auth.RequireRole(p, entities.RoleBuilder); err != nil {
		return entities.Project{}, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.City) == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}
	if in.StartingPrice < 0 {
		return entities.Project{}, ErrInvalidProjectInput
	}

	dev, err := u.auth.DeveloperFor(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if dev.ID == "" {
		return entities.Project{}, ErrDeveloperProfileRequired
	}

	status := in.Status
	if status == "" {
		status = entities.ProjectStatusUpcoming
	}

	now := time.Now().UTC()
	project := entities.Project{
		ID:                 uuid.NewString(),
		DeveloperID:        dev.ID,
		DeveloperVerified:  dev.Verified,
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		ProjectType:        in.ProjectType,
		City:               in.City,
		Locality:           in.Locality,
		Status:             status,
		StartingPrice:      in.StartingPrice,
		PropertyTypes:      in.PropertyTypes,
		ExpectedCompletion: in.ExpectedCompletion,
		VerificationScore:  dev.VerificationScore,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.projects.Create(ctx, project)
	if err != nil {
		log.Printf("[catalog][usecase] project create failed developer_id=%s err=%v", dev.ID, err)
		return entities.Project{}, err
	}
	log.Printf("[catalog][usecase] project created project_id=%s developer_id=%s city=%s", created.ID, dev.ID, created.City)
	return created, nil
}

func (u *CatalogUseCase) ListProjects(ctx context.Context, filter interfaces.ProjectFilter, ordering interfaces.ProjectOrdering, page interfaces.Page) ([]entities.Project, error) {
	projects, err := u.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	orderProjects(projects, ordering)

	size := page.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	number := page.Number
	if number <= 0 {
		number = 1
	}

	start := (number - 1) * size
	if start >= len(projects) {
		return []entities.Project{}, nil
	}
	end := start + size
	if end > len(projects) {
		end = len(projects)
	}
	return projects[start:end], nil
}

// orderProjects sorts in place. popular ranks by (avg rating desc, review
// count desc, views desc) with unrated projects last.
func orderProjects(projects []entities.Project, ordering interfaces.ProjectOrdering) {
	switch ordering {
	case interfaces.OrderByStartingPrice:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].StartingPrice < projects[j].StartingPrice
		})
	case interfaces.OrderByExpectedCompletion:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].ExpectedCompletion.Before(projects[j].ExpectedCompletion)
		})
	case interfaces.OrderByVerificationScore:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].VerificationScore > projects[j].VerificationScore
		})
	case interfaces.OrderByViewsCount:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].ViewsCount > projects[j].ViewsCount
		})
	case interfaces.OrderByPopular:
		sort.SliceStable(projects, func(i, j int) bool {
			a, b := projects[i], projects[j]
			switch {
			case a.AvgRating == nil && b.AvgRating == nil:
			case a.AvgRating == nil:
				return false
			case b.AvgRating == nil:
				return true
			case *a.AvgRating != *b.AvgRating:
				return *a.AvgRating > *b.AvgRating
			}
			if a.ReviewCount != b.ReviewCount {
				return a.ReviewCount > b.ReviewCount
			}
			return a.ViewsCount > b.ViewsCount
		})
	default: // created_at, newest first
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		})
	}
}

// GetProject loads a project and counts the view. The increment is
// best-effort: a failed counter update never fails the read.
func (u *CatalogUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	project, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	if err := u.projects.IncrementViews(ctx, id); err != nil {
		log.Printf("[catalog][usecase] views increment failed project_id=%s err=%v", id, err)
	} else {
		project.ViewsCount++
	}
	return project, nil
}

func (u *CatalogUseCase) GetDeveloper(ctx context.Context, id string) (entities.Developer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Developer{}, ErrDeveloperNotFound
	}

	dev, err := u.developers.GetByID(ctx, id)
	if err != nil {
		return entities.Developer{}, err
	}
	if dev.ID == "" {
		return entities.Developer{}, ErrDeveloperNotFound
	}
	return dev, nil
}

func (u *CatalogUseCase) CreateProperty(ctx context.Context, p entities.Principal, projectID string, in CreatePropertyInput) (entities.Property, error) {
	project, err := u.requireOwnedProject(ctx, p, projectID)
	if err != nil {
		return entities.Property{}, err
	}
	if strings.TrimSpace(in.UnitNumber) == "" || in.Price < 0 {
		return entities.Property{}, ErrInvalidPropertyInput
	}

	existing, err := u.properties.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.Property{}, err
	}
	for _, prop := range existing {
		if prop.UnitNumber == in.UnitNumber {
			return entities.Property{}, ErrDuplicateUnitNumber
		}
	}

	now := time.Now().UTC()
	secret := newQRSecret()
	property := entities.Property{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		UnitNumber:   strings.TrimSpace(in.UnitNumber),
		Floor:        in.Floor,
		PropertyType: in.PropertyType,
		Price:        in.Price,
		Status:       entities.PropertyStatusAvailable,
		QRCodeSecret: secret,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	property.QRCodeData = qrData("property", projectID, property.ID, secret)

	created, err := u.properties.Create(ctx, property)
	if err != nil {
		log.Printf("[catalog][usecase] property create failed project_id=%s unit=%s err=%v", projectID, in.UnitNumber, err)
		return entities.Property{}, err
	}

	u.refreshUnitCounts(ctx, project.ID)
	log.Printf("[catalog][usecase] property created property_id=%s project_id=%s unit=%s", created.ID, projectID, created.UnitNumber)
	return created, nil
}

func (u *CatalogUseCase) CreateMilestone(ctx context.Context, p entities.Principal, projectID string, in CreateMilestoneInput) (entities.Milestone, error) {
	if _, err := u.requireOwnedProject(ctx, p, projectID); err != nil {
		return entities.Milestone{}, err
	}
	if strings.TrimSpace(in.Name) == "" || in.PhaseNumber < 1 {
		return entities.Milestone{}, ErrInvalidMilestoneInput
	}

	now := time.Now().UTC()
	secret := newQRSecret()
	milestone := entities.Milestone{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		PhaseNumber:  in.PhaseNumber,
		Status:       entities.MilestoneStatusPending,
		QRCodeSecret: secret,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	milestone.QRCodeData = qrData("milestone", projectID, milestone.ID, secret)

	created, err := u.milestones.Create(ctx, milestone)
	if err != nil {
		log.Printf("[catalog][usecase] milestone create failed project_id=%s phase=%d err=%v", projectID, in.PhaseNumber, err)
		return entities.Milestone{}, err
	}
	log.Printf("[catalog][usecase] milestone created milestone_id=%s project_id=%s phase=%d", created.ID, projectID, created.PhaseNumber)
	return created, nil
}

func (u *CatalogUseCase) ListProperties(ctx context.Context, p entities.Principal, projectID string) ([]entities.Property, error) {
	if err := u.requireProjectDetailAccess(ctx, p, projectID); err != nil {
		return nil, err
	}
	return u.properties.ListByProjectID(ctx, projectID)
}

func (u *CatalogUseCase) ListMilestones(ctx context.Context, p entities.Principal, projectID string) ([]entities.Milestone, error) {
	if err := u.requireProjectDetailAccess(ctx, p, projectID); err != nil {
		return nil, err
	}

	milestones, err := u.milestones.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].PhaseNumber < milestones[j].PhaseNumber
	})
	return milestones, nil
}

// ListUpdates returns the project's construction update feed. Owner-only
// updates (property uploads) are visible to staff, the project's developer,
// and the owner of the referenced property.
func (u *CatalogUseCase) ListUpdates(ctx context.Context, p entities.Principal, projectID string) ([]entities.ConstructionUpdate, error) {
	if err := u.requireProjectDetailAccess(ctx, p, projectID); err != nil {
		return nil, err
	}

	all, err := u.updates.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	isDeveloper, err := u.isProjectDeveloper(ctx, p, projectID)
	if err != nil {
		return nil, err
	}

	visible := make([]entities.ConstructionUpdate, 0, len(all))
	for _, upd := range all {
		if !upd.OwnerOnly || p.Role == entities.RoleStaff || isDeveloper {
			visible = append(visible, upd)
			continue
		}
		if upd.PropertyID != "" {
			prop, err := u.properties.GetByID(ctx, upd.PropertyID)
			if err != nil {
				return nil, err
			}
			if prop.BuyerID == p.ID {
				visible = append(visible, upd)
			}
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible, nil
}

// MutatePropertyStatus is the booking engine's entry point for property
// projection changes. The swap is a repository-level compare-and-swap; a lost
// race yields a zero Property and nil error. On success the parent project's
// available_units counter is recomputed from property rows.
func (u *CatalogUseCase) MutatePropertyStatus(ctx context.Context, propertyID string, from, to entities.PropertyStatus, buyerID string) (entities.Property, error) {
	property, err := u.properties.TransitionStatus(ctx, propertyID, from, to, buyerID)
	if err != nil {
		return entities.Property{}, err
	}
	if property.ID == "" {
		log.Printf("[catalog][usecase] property status swap lost property_id=%s from=%s to=%s", propertyID, from, to)
		return entities.Property{}, nil
	}

	u.refreshUnitCounts(ctx, property.ProjectID)
	log.Printf("[catalog][usecase] property status changed property_id=%s from=%s to=%s", propertyID, from, to)
	return property, nil
}

func (u *CatalogUseCase) refreshUnitCounts(ctx context.Context, projectID string) {
	properties, err := u.properties.ListByProjectID(ctx, projectID)
	if err != nil {
		log.Printf("[catalog][usecase] unit recount failed project_id=%s err=%v", projectID, err)
		return
	}
	available := 0
	for _, prop := range properties {
		if prop.Status == entities.PropertyStatusAvailable {
			available++
		}
	}
	if _, err := u.projects.SetUnitCounts(ctx, projectID, len(properties), available); err != nil {
		log.Printf("[catalog][usecase] unit counts persist failed project_id=%s err=%v", projectID, err)
	}
}

// requireProjectDetailAccess gates milestone/property/update listings:
// staff, the project's developer, and any buyer-role principal may view.
func (u *CatalogUseCase) requireProjectDetailAccess(ctx context.Context, p entities.Principal, projectID string) error {
	if p.IsAnonymous() {
		return ErrUnauthorized
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.ID == "" {
		return ErrProjectNotFound
	}

	if p.Role == entities.RoleStaff || p.Role == entities.RoleBuyer {
		return nil
	}
	isDev, err := u.isProjectDeveloper(ctx, p, projectID)
	if err != nil {
		return err
	}
	if !isDev {
		return ErrForbidden
	}
	return nil
}

func (u *CatalogUseCase) isProjectDeveloper(ctx context.Context, p entities.Principal, projectID string) (bool, error) {
	dev, err := u.auth.DeveloperFor(ctx, p)
	if err != nil || dev.ID == "" {
		return false, err
	}
	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return false, err
	}
	return project.ID != "" && project.DeveloperID == dev.ID, nil
}

func (u *CatalogUseCase) requireOwnedProject(ctx context.Context, p entities.Principal, projectID string) (entities.Project, error) {
	if err := u.auth.RequireRole(p, entities.RoleBuilder); err != nil {
		return entities.Project{}, err
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	if p.Role != entities.RoleStaff {
		isDev, err := u.isProjectDeveloper(ctx, p, projectID)
		if err != nil {
			return entities.Project{}, err
		}
		if !isDev {
			return entities.Project{}, ErrForbidden
		}
	}
	return project, nil
}
