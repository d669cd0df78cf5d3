package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"
	mock_interfaces "apnaghar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	projects   *mock_interfaces.MockIProjectRepository
	properties *mock_interfaces.MockIPropertyRepository
	milestones *mock_interfaces.MockIMilestoneRepository
	developers *mock_interfaces.MockIDeveloperRepository
	updates    *mock_interfaces.MockIUpdateRepository
}

func newCatalogUseCaseForTest(t *testing.T) (*CatalogUseCase, catalogMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := catalogMocks{
		projects:   mock_interfaces.NewMockIProjectRepository(ctrl),
		properties: mock_interfaces.NewMockIPropertyRepository(ctrl),
		milestones: mock_interfaces.NewMockIMilestoneRepository(ctrl),
		developers: mock_interfaces.NewMockIDeveloperRepository(ctrl),
		updates:    mock_interfaces.NewMockIUpdateRepository(ctrl),
	}
	auth := NewAuthUseCase(mock_interfaces.NewMockIPrincipalRepository(ctrl), m.developers, m.projects)
	uc := NewCatalogUseCase(m.projects, m.properties, m.milestones, m.developers, m.updates, auth)
	return uc, m
}

func (m catalogMocks) expectDeveloperProfile() {
	m.developers.EXPECT().GetByPrincipalID(gomock.Any(), "builder-1").
		Return(entities.Developer{ID: "dev-1", PrincipalID: "builder-1", Verified: true, VerificationScore: 87.5}, nil)
}

func TestCatalogUseCase_CreateProject(t *testing.T) {
	t.Run("anonymous rejected", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateProject(context.Background(), entities.Principal{}, CreateProjectInput{Name: "Skyline", City: "Pune"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("buyer role rejected", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateProject(context.Background(), buyer(), CreateProjectInput{Name: "Skyline", City: "Pune"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing city rejected", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateProject(context.Background(), builder(), CreateProjectInput{Name: "Skyline"})
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("developer profile required", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.developers.EXPECT().GetByPrincipalID(gomock.Any(), "builder-1").Return(entities.Developer{}, nil)

		_, err := uc.CreateProject(context.Background(), builder(), CreateProjectInput{Name: "Skyline", City: "Pune"})
		if !errors.Is(err, ErrDeveloperProfileRequired) {
			t.Fatalf("expected ErrDeveloperProfileRequired, got %v", err)
		}
	})

	t.Run("created with developer projection", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.expectDeveloperProfile()
		m.projects.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.DeveloperID != "dev-1" || !p.DeveloperVerified || p.VerificationScore != 87.5 {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.Status != entities.ProjectStatusUpcoming {
					t.Fatalf("expected default status upcoming, got %s", p.Status)
				}
				return p, nil
			},
		)

		project, err := uc.CreateProject(context.Background(), builder(), CreateProjectInput{Name: "  Skyline  ", City: "Pune"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.Name != "Skyline" {
			t.Fatalf("expected trimmed name, got %q", project.Name)
		}
	})
}

func TestCatalogUseCase_ListProjects(t *testing.T) {
	rate := func(v float64) *float64 { return &v }
	catalog := []entities.Project{
		{ID: "p1", StartingPrice: 9000000, ViewsCount: 5},
		{ID: "p2", StartingPrice: 4000000, ViewsCount: 50, AvgRating: rate(4.2), ReviewCount: 12},
		{ID: "p3", StartingPrice: 6000000, ViewsCount: 20, AvgRating: rate(4.8), ReviewCount: 3},
	}

	t.Run("ordered by starting price", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().List(gomock.Any(), interfaces.ProjectFilter{City: "Pune"}).
			Return(append([]entities.Project{}, catalog...), nil)

		got, err := uc.ListProjects(context.Background(), interfaces.ProjectFilter{City: "Pune"}, interfaces.OrderByStartingPrice, interfaces.Page{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "p2" || got[1].ID != "p3" || got[2].ID != "p1" {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("popular ranks rated projects first", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(append([]entities.Project{}, catalog...), nil)

		got, err := uc.ListProjects(context.Background(), interfaces.ProjectFilter{}, interfaces.OrderByPopular, interfaces.Page{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "p3" || got[1].ID != "p2" || got[2].ID != "p1" {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("second page", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(append([]entities.Project{}, catalog...), nil)

		got, err := uc.ListProjects(context.Background(), interfaces.ProjectFilter{}, interfaces.OrderByStartingPrice, interfaces.Page{Number: 2, Size: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("unexpected page: %v", got)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(append([]entities.Project{}, catalog...), nil)

		got, err := uc.ListProjects(context.Background(), interfaces.ProjectFilter{}, interfaces.OrderByCreatedAt, interfaces.Page{Number: 9, Size: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty page, got %v", got)
		}
	})
}

func TestCatalogUseCase_GetProject(t *testing.T) {
	t.Run("unknown project", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-9").Return(entities.Project{}, nil)

		_, err := uc.GetProject(context.Background(), "proj-9")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("read counts the view", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", ViewsCount: 41}, nil)
		m.projects.EXPECT().IncrementViews(gomock.Any(), "proj-1").Return(nil)

		project, err := uc.GetProject(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ViewsCount != 42 {
			t.Fatalf("expected 42 views, got %d", project.ViewsCount)
		}
	})

	t.Run("counter failure does not fail the read", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", ViewsCount: 41}, nil)
		m.projects.EXPECT().IncrementViews(gomock.Any(), "proj-1").Return(errors.New("throttled"))

		project, err := uc.GetProject(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ViewsCount != 41 {
			t.Fatalf("expected stale count 41, got %d", project.ViewsCount)
		}
	})
}

func TestCatalogUseCase_CreateProperty(t *testing.T) {
	owned := entities.Project{ID: "proj-1", DeveloperID: "dev-1"}

	t.Run("duplicate unit number rejected", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(owned, nil).Times(2)
		m.expectDeveloperProfile()
		m.properties.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Property{
			{ID: "prop-1", UnitNumber: "A-101"},
		}, nil)

		_, err := uc.CreateProperty(context.Background(), builder(), "proj-1", CreatePropertyInput{UnitNumber: "A-101", Price: 100})
		if !errors.Is(err, ErrDuplicateUnitNumber) {
			t.Fatalf("expected ErrDuplicateUnitNumber, got %v", err)
		}
	})

	t.Run("created with qr capability and recount", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(owned, nil).Times(2)
		m.expectDeveloperProfile()
		m.properties.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		m.properties.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.Status != entities.PropertyStatusAvailable {
					t.Fatalf("expected available, got %s", p.Status)
				}
				if len(p.QRCodeSecret) != 64 {
					t.Fatalf("expected 64-char secret, got %d", len(p.QRCodeSecret))
				}
				if !strings.HasPrefix(p.QRCodeData, "property:proj-1:"+p.ID+":") {
					t.Fatalf("unexpected qr data %q", p.QRCodeData)
				}
				return p, nil
			},
		)
		m.properties.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Property{
			{ID: "prop-1", Status: entities.PropertyStatusAvailable},
		}, nil)
		m.projects.EXPECT().SetUnitCounts(gomock.Any(), "proj-1", 1, 1).Return(owned, nil)

		if _, err := uc.CreateProperty(context.Background(), builder(), "proj-1", CreatePropertyInput{UnitNumber: "A-101", Price: 100}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_CreateMilestone(t *testing.T) {
	owned := entities.Project{ID: "proj-1", DeveloperID: "dev-1"}

	t.Run("phase below one rejected", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(owned, nil).Times(2)
		m.expectDeveloperProfile()

		_, err := uc.CreateMilestone(context.Background(), builder(), "proj-1", CreateMilestoneInput{Name: "Foundation", PhaseNumber: 0})
		if !errors.Is(err, ErrInvalidMilestoneInput) {
			t.Fatalf("expected ErrInvalidMilestoneInput, got %v", err)
		}
	})

	t.Run("created pending with qr capability", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(owned, nil).Times(2)
		m.expectDeveloperProfile()
		m.milestones.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Milestone{})).DoAndReturn(
			func(_ context.Context, ms entities.Milestone) (entities.Milestone, error) {
				if ms.Status != entities.MilestoneStatusPending {
					t.Fatalf("expected pending, got %s", ms.Status)
				}
				if !strings.HasPrefix(ms.QRCodeData, "milestone:proj-1:"+ms.ID+":") {
					t.Fatalf("unexpected qr data %q", ms.QRCodeData)
				}
				return ms, nil
			},
		)

		if _, err := uc.CreateMilestone(context.Background(), builder(), "proj-1", CreateMilestoneInput{Name: "Foundation", PhaseNumber: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_ListMilestones(t *testing.T) {
	uc, m := newCatalogUseCaseForTest(t)
	m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
	m.milestones.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Milestone{
		{ID: "ms-3", PhaseNumber: 3},
		{ID: "ms-1", PhaseNumber: 1},
		{ID: "ms-2", PhaseNumber: 2},
	}, nil)

	got, err := uc.ListMilestones(context.Background(), buyer(), "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].PhaseNumber != 1 || got[1].PhaseNumber != 2 || got[2].PhaseNumber != 3 {
		t.Fatalf("expected phase order, got %v", got)
	}
}

func TestCatalogUseCase_ListUpdates(t *testing.T) {
	now := time.Now().UTC()
	feed := []entities.ConstructionUpdate{
		{ID: "u1", ProjectID: "proj-1", OwnerOnly: false, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "u2", ProjectID: "proj-1", OwnerOnly: true, PropertyID: "prop-mine", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "u3", ProjectID: "proj-1", OwnerOnly: true, PropertyID: "prop-theirs", CreatedAt: now},
	}

	t.Run("buyer sees public plus own unit", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		m.updates.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(feed, nil)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-mine").
			Return(entities.Property{ID: "prop-mine", BuyerID: "buyer-1"}, nil)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-theirs").
			Return(entities.Property{ID: "prop-theirs", BuyerID: "buyer-2"}, nil)

		got, err := uc.ListUpdates(context.Background(), buyer(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "u2" || got[1].ID != "u1" {
			t.Fatalf("unexpected feed: %v", got)
		}
	})

	t.Run("project developer sees everything", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").
			Return(entities.Project{ID: "proj-1", DeveloperID: "dev-1"}, nil).Times(3)
		m.developers.EXPECT().GetByPrincipalID(gomock.Any(), "builder-1").
			Return(entities.Developer{ID: "dev-1"}, nil).Times(2)
		m.updates.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(feed, nil)

		got, err := uc.ListUpdates(context.Background(), builder(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "u3" {
			t.Fatalf("unexpected feed: %v", got)
		}
	})
}

func TestCatalogUseCase_MutatePropertyStatus(t *testing.T) {
	t.Run("lost swap yields zero property", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.properties.EXPECT().TransitionStatus(gomock.Any(), "prop-1", entities.PropertyStatusAvailable, entities.PropertyStatusBooked, "buyer-1").
			Return(entities.Property{}, nil)

		got, err := uc.MutatePropertyStatus(context.Background(), "prop-1", entities.PropertyStatusAvailable, entities.PropertyStatusBooked, "buyer-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero property, got %+v", got)
		}
	})

	t.Run("won swap recounts units", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.properties.EXPECT().TransitionStatus(gomock.Any(), "prop-1", entities.PropertyStatusAvailable, entities.PropertyStatusBooked, "buyer-1").
			Return(entities.Property{ID: "prop-1", ProjectID: "proj-1", Status: entities.PropertyStatusBooked}, nil)
		m.properties.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Property{
			{ID: "prop-1", Status: entities.PropertyStatusBooked},
			{ID: "prop-2", Status: entities.PropertyStatusAvailable},
		}, nil)
		m.projects.EXPECT().SetUnitCounts(gomock.Any(), "proj-1", 2, 1).
			Return(entities.Project{ID: "proj-1"}, nil)

		got, err := uc.MutatePropertyStatus(context.Background(), "prop-1", entities.PropertyStatusAvailable, entities.PropertyStatusBooked, "buyer-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PropertyStatusBooked {
			t.Fatalf("unexpected property: %+v", got)
		}
	})
}
