package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/events"
	mock_interfaces "apnaghar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testQRSecret = "a3f09b1c5d7e2468a3f09b1c5d7e2468deadbeefdeadbeefdeadbeefdeadbeef"

func builder() entities.Principal {
	return entities.Principal{ID: "builder-1", Role: entities.RoleBuilder}
}

func siteMilestone() entities.Milestone {
	return entities.Milestone{
		ID:           "ms-1",
		ProjectID:    "proj-1",
		Name:         "Foundation",
		QRCodeData:   "milestone:proj-1:ms-1:" + testQRSecret[:32],
		QRCodeSecret: testQRSecret,
	}
}

func mobileUpload(files ...UploadFile) UploadInput {
	return UploadInput{
		UploadToken:     testQRSecret[:32],
		Description:     "slab poured",
		CaptureMetadata: entities.CaptureMetadata{CameraCaptured: true},
		DeviceInfo:      entities.DeviceInfo{IsMobile: true},
		Images:          files,
	}
}

type evidenceMocks struct {
	milestones *mock_interfaces.MockIMilestoneRepository
	properties *mock_interfaces.MockIPropertyRepository
	projects   *mock_interfaces.MockIProjectRepository
	updates    *mock_interfaces.MockIUpdateRepository
	storage    *mock_interfaces.MockIObjectStorage
	anchor     *mock_interfaces.MockIAnchorClient
	developers *mock_interfaces.MockIDeveloperRepository
}

func newEvidenceUseCaseForTest(t *testing.T) (*EvidenceUseCase, evidenceMocks, *events.Bus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := evidenceMocks{
		milestones: mock_interfaces.NewMockIMilestoneRepository(ctrl),
		properties: mock_interfaces.NewMockIPropertyRepository(ctrl),
		projects:   mock_interfaces.NewMockIProjectRepository(ctrl),
		updates:    mock_interfaces.NewMockIUpdateRepository(ctrl),
		storage:    mock_interfaces.NewMockIObjectStorage(ctrl),
		anchor:     mock_interfaces.NewMockIAnchorClient(ctrl),
		developers: mock_interfaces.NewMockIDeveloperRepository(ctrl),
	}
	auth := NewAuthUseCase(mock_interfaces.NewMockIPrincipalRepository(ctrl), m.developers, m.projects)
	bus := events.NewBus()
	uc := NewEvidenceUseCase(m.milestones, m.properties, m.projects, m.updates, m.storage, m.anchor, auth, bus)
	return uc, m, bus
}

// expectOwnership wires the developer profile and project lookup that the
// ownership check performs for a builder principal.
func (m evidenceMocks) expectOwnership() {
	m.developers.EXPECT().GetByPrincipalID(gomock.Any(), "builder-1").
		Return(entities.Developer{ID: "dev-1", PrincipalID: "builder-1"}, nil)
	m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").
		Return(entities.Project{ID: "proj-1", DeveloperID: "dev-1"}, nil)
}

func TestEvidenceUseCase_VerifyQR(t *testing.T) {
	t.Run("malformed payload", func(t *testing.T) {
		uc, _, _ := newEvidenceUseCaseForTest(t)
		_, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{QRData: "milestone:proj-1"})
		if !errors.Is(err, ErrInvalidQRData) {
			t.Fatalf("expected ErrInvalidQRData, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc, _, _ := newEvidenceUseCaseForTest(t)
		_, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{QRData: "invoice:proj-1:ms-1:tok"})
		if !errors.Is(err, ErrInvalidQRData) {
			t.Fatalf("expected ErrInvalidQRData, got %v", err)
		}
	})

	t.Run("project mismatch", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		ms := siteMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)

		_, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{QRData: "milestone:proj-9:ms-1:" + testQRSecret[:32]})
		if !errors.Is(err, ErrQREntityMismatch) {
			t.Fatalf("expected ErrQREntityMismatch, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(siteMilestone(), nil)

		_, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{QRData: "milestone:proj-1:ms-1:forgedtoken"})
		if !errors.Is(err, ErrQREntityMismatch) {
			t.Fatalf("expected ErrQREntityMismatch, got %v", err)
		}
	})

	t.Run("foreign developer forbidden", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		ms := siteMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)
		m.developers.EXPECT().GetByPrincipalID(gomock.Any(), "builder-1").
			Return(entities.Developer{ID: "dev-1", PrincipalID: "builder-1"}, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").
			Return(entities.Project{ID: "proj-1", DeveloperID: "dev-other"}, nil)

		_, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{QRData: ms.QRCodeData, DeviceInfo: entities.DeviceInfo{IsMobile: true}})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("desktop blocked", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		ms := siteMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)
		m.expectOwnership()

		_, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{
			QRData:    ms.QRCodeData,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		})
		if !errors.Is(err, ErrDesktopUploadBlocked) {
			t.Fatalf("expected ErrDesktopUploadBlocked, got %v", err)
		}
	})

	t.Run("mobile user agent admitted without device flag", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		ms := siteMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)
		m.expectOwnership()

		v, err := uc.VerifyQR(context.Background(), builder(), VerifyQRInput{
			QRData:    ms.QRCodeData,
			UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.UploadToken != testQRSecret[:32] {
			t.Fatalf("unexpected token %q", v.UploadToken)
		}
		if v.UploadEndpoint != "/v1/milestones/ms-1/secure-upload" {
			t.Fatalf("unexpected endpoint %q", v.UploadEndpoint)
		}
		if v.Limits.MaxImages != 10 || v.Limits.MaxVideos != 5 {
			t.Fatalf("unexpected limits %+v", v.Limits)
		}
	})
}

func TestEvidenceUseCase_UploadMilestoneEvidence(t *testing.T) {
	t.Run("bad token rejected", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(siteMilestone(), nil)
		m.expectOwnership()

		in := mobileUpload(UploadFile{Name: "a.jpg", Data: []byte("x")})
		in.UploadToken = "wrong"
		_, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", in)
		if !errors.Is(err, ErrInvalidUploadToken) {
			t.Fatalf("expected ErrInvalidUploadToken, got %v", err)
		}
	})

	t.Run("gallery picks rejected", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(siteMilestone(), nil)
		m.expectOwnership()

		in := mobileUpload(UploadFile{Name: "a.jpg", Data: []byte("x")})
		in.CaptureMetadata.CameraCaptured = false
		_, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", in)
		if !errors.Is(err, ErrGalleryUploadBlocked) {
			t.Fatalf("expected ErrGalleryUploadBlocked, got %v", err)
		}
	})

	t.Run("empty upload rejected", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(siteMilestone(), nil)
		m.expectOwnership()

		_, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", mobileUpload())
		if !errors.Is(err, ErrNoFiles) {
			t.Fatalf("expected ErrNoFiles, got %v", err)
		}
	})

	t.Run("too many images rejected", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(siteMilestone(), nil)
		m.expectOwnership()

		files := make([]UploadFile, 11)
		for i := range files {
			files[i] = UploadFile{Name: "a.jpg", Data: []byte("x")}
		}
		_, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", mobileUpload(files...))
		if !errors.Is(err, ErrUploadLimitExceeded) {
			t.Fatalf("expected ErrUploadLimitExceeded, got %v", err)
		}
	})

	t.Run("oversized image rejected", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(siteMilestone(), nil)
		m.expectOwnership()

		big := UploadFile{Name: "a.jpg", Data: make([]byte, (10<<20)+1)}
		_, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", mobileUpload(big))
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("expected ErrFileTooLarge, got %v", err)
		}
	})

	t.Run("duplicate content reuses stored object", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		ms := siteMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)
		m.expectOwnership()

		m.storage.EXPECT().Exists(gomock.Any(), gomock.Any(), "image").Return(true, nil)
		m.storage.EXPECT().URLFor(gomock.Any(), "image").Return("https://cdn.example/known.jpg")
		m.milestones.EXPECT().AppendMedia(gomock.Any(), "ms-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, photos, videos []entities.MediaEntry) (entities.Milestone, error) {
				if len(photos) != 1 || photos[0].URL != "https://cdn.example/known.jpg" {
					t.Fatalf("unexpected photos: %+v", photos)
				}
				return ms, nil
			},
		)
		m.updates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, upd entities.ConstructionUpdate) (entities.ConstructionUpdate, error) { return upd, nil },
		)

		res, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", mobileUpload(UploadFile{Name: "a.jpg", Data: []byte("x")}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Photos) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("fresh upload attaches media and publishes", func(t *testing.T) {
		uc, m, bus := newEvidenceUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		ms := siteMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)
		m.expectOwnership()

		m.storage.EXPECT().Exists(gomock.Any(), gomock.Any(), "image").DoAndReturn(
			func(_ context.Context, publicID, _ string) (bool, error) {
				if !strings.HasPrefix(publicID, "milestones/") {
					t.Fatalf("unexpected key %q", publicID)
				}
				return false, nil
			},
		)
		m.storage.EXPECT().Upload(gomock.Any(), []byte("slab"), gomock.Any(), "image").
			Return("https://cdn.example/fresh.jpg", nil)
		m.milestones.EXPECT().AppendMedia(gomock.Any(), "ms-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, photos, videos []entities.MediaEntry) (entities.Milestone, error) {
				if len(photos) != 1 || !photos[0].QRVerified || photos[0].SHA256 == "" {
					t.Fatalf("unexpected photos: %+v", photos)
				}
				return ms, nil
			},
		)
		m.updates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, upd entities.ConstructionUpdate) (entities.ConstructionUpdate, error) {
				if upd.MilestoneID != "ms-1" || upd.OwnerOnly {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return upd, nil
			},
		)

		res, err := uc.UploadMilestoneEvidence(context.Background(), builder(), "ms-1", mobileUpload(UploadFile{Name: "a.jpg", Data: []byte("slab")}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Kind != "milestone" || res.EntityID != "ms-1" {
			t.Fatalf("unexpected result: %+v", res)
		}

		var names []string
		for _, e := range published {
			names = append(names, e.Name())
		}
		if len(names) != 2 || names[0] != events.NameConstructionUpdatePosted || names[1] != events.NameEvidenceAttached {
			t.Fatalf("unexpected events %v", names)
		}
	})
}

func TestEvidenceUseCase_UploadPropertyEvidence(t *testing.T) {
	t.Run("owner-only unit update posted", func(t *testing.T) {
		uc, m, bus := newEvidenceUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		prop := entities.Property{
			ID:           "prop-1",
			ProjectID:    "proj-1",
			UnitNumber:   "A-1203",
			BuyerID:      "owner-7",
			QRCodeData:   "property:proj-1:prop-1:" + testQRSecret[:32],
			QRCodeSecret: testQRSecret,
		}
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(prop, nil)
		m.expectOwnership()

		m.storage.EXPECT().Exists(gomock.Any(), gomock.Any(), "image").Return(false, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image").
			Return("https://cdn.example/unit.jpg", nil)
		m.properties.EXPECT().AppendMedia(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(prop, nil)
		m.updates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, upd entities.ConstructionUpdate) (entities.ConstructionUpdate, error) {
				if !upd.OwnerOnly || upd.PropertyID != "prop-1" {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return upd, nil
			},
		)

		res, err := uc.UploadPropertyEvidence(context.Background(), builder(), "prop-1", mobileUpload(UploadFile{Name: "a.jpg", Data: []byte("tiles")}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Kind != "property" {
			t.Fatalf("unexpected result: %+v", res)
		}

		attached, ok := published[len(published)-1].(events.EvidenceAttached)
		if !ok {
			t.Fatalf("expected EvidenceAttached last, got %v", published)
		}
		if attached.OwnerID != "owner-7" {
			t.Fatalf("expected unit owner on event, got %q", attached.OwnerID)
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-9").Return(entities.Property{}, nil)

		_, err := uc.UploadPropertyEvidence(context.Background(), builder(), "prop-9", mobileUpload())
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})
}

func TestEvidenceUseCase_HandleEvidenceAttached(t *testing.T) {
	t.Run("milestone hashes anchored", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.anchor.EXPECT().AnchorMilestone(gomock.Any(), "ms-1", "proj-1", []string{"abc123"}).Return(nil)

		uc.HandleEvidenceAttached(context.Background(), events.EvidenceAttached{
			Kind:      "milestone",
			ProjectID: "proj-1",
			EntityID:  "ms-1",
			SHA256s:   []string{"abc123"},
		})
	})

	t.Run("anchor failure swallowed", func(t *testing.T) {
		uc, m, _ := newEvidenceUseCaseForTest(t)
		m.anchor.EXPECT().AnchorProperty(gomock.Any(), "prop-1", "proj-1", gomock.Any()).
			Return(errors.New("middleware down"))

		uc.HandleEvidenceAttached(context.Background(), events.EvidenceAttached{
			Kind:      "property",
			ProjectID: "proj-1",
			EntityID:  "prop-1",
			SHA256s:   []string{"abc123"},
		})
	})
}
