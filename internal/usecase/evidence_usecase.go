package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/events"
	"apnaghar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQRData        = errors.New("invalid qr data")
	ErrQREntityMismatch     = errors.New("qr entity mismatch")
	ErrInvalidUploadToken   = errors.New("invalid upload token")
	ErrDesktopUploadBlocked = errors.New("desktop upload blocked")
	ErrGalleryUploadBlocked = errors.New("gallery upload blocked")
	ErrUploadLimitExceeded  = errors.New("upload limit exceeded")
	ErrFileTooLarge         = errors.New("file too large")
	ErrNoFiles              = errors.New("no files in upload")
)

const (
	maxMilestoneImages = 10
	maxPropertyImages  = 15
	maxVideos          = 5
	maxImageBytes      = 10 << 20 // 10 MiB
	maxVideoBytes      = 50 << 20 // 50 MiB

	milestoneMediaFolder = "milestones"
	propertyMediaFolder  = "units"
)

// UploadLimits are the hard per-upload limits returned by QR verification and
// enforced on upload.
type UploadLimits struct {
	MaxImages     int   `json:"max_images"`
	MaxVideos     int   `json:"max_videos"`
	MaxImageBytes int64 `json:"max_image_bytes"`
	MaxVideoBytes int64 `json:"max_video_bytes"`
}

// QRVerification is the result of a successful QR check: the capability the
// mobile client needs to reach the upload endpoint.
type QRVerification struct {
	Kind           string       `json:"kind"`
	EntityID       string       `json:"entity_id"`
	ProjectID      string       `json:"project_id"`
	UploadToken    string       `json:"upload_token"`
	UploadEndpoint string       `json:"upload_endpoint"`
	Limits         UploadLimits `json:"limits"`
}

type VerifyQRInput struct {
	QRData     string
	DeviceInfo entities.DeviceInfo
	UserAgent  string
}

// UploadFile is one file from the multipart form.
type UploadFile struct {
	Name string
	Data []byte
}

type UploadInput struct {
	UploadToken     string
	Description     string
	CaptureMetadata entities.CaptureMetadata
	DeviceInfo      entities.DeviceInfo
	UserAgent       string
	Images          []UploadFile
	Videos          []UploadFile
}

// UploadResult reports what was attached.
type UploadResult struct {
	Kind     string                `json:"kind"`
	EntityID string                `json:"entity_id"`
	Photos   []entities.MediaEntry `json:"photos,omitempty"`
	Videos   []entities.MediaEntry `json:"videos,omitempty"`
}

// IEvidenceUseCase is the QR-bound, mobile-gated evidence ingestion path.
type IEvidenceUseCase interface {
	VerifyQR(ctx context.Context, p entities.Principal, in VerifyQRInput) (QRVerification, error)
	UploadMilestoneEvidence(ctx context.Context, p entities.Principal, milestoneID string, in UploadInput) (UploadResult, error)
	UploadPropertyEvidence(ctx context.Context, p entities.Principal, propertyID string, in UploadInput) (UploadResult, error)
	HandleEvidenceAttached(ctx context.Context, ev events.Event)
}

type EvidenceUseCase struct {
	milestones interfaces.IMilestoneRepository
	properties interfaces.IPropertyRepository
	projects   interfaces.IProjectRepository
	updates    interfaces.IUpdateRepository
	storage    interfaces.IObjectStorage
	anchor     interfaces.IAnchorClient
	auth       IAuthUseCase
	bus        *events.Bus
}

var _ IEvidenceUseCase = (*EvidenceUseCase)(nil)

func NewEvidenceUseCase(milestones interfaces.IMilestoneRepository, properties interfaces.IPropertyRepository, projects interfaces.IProjectRepository, updates interfaces.IUpdateRepository, storage interfaces.IObjectStorage, anchor interfaces.IAnchorClient, auth IAuthUseCase, bus *events.Bus) *EvidenceUseCase {
	return &EvidenceUseCase{
		milestones: milestones,
		properties: properties,
		projects:   projects,
		updates:    updates,
		storage:    storage,
		anchor:     anchor,
		auth:       auth,
		bus:        bus,
	}
}

// VerifyQR parses the printed QR payload, checks that it names a real entity
// owned by the requesting developer, enforces the mobile gate, and hands out
// the upload capability.
func (u *EvidenceUseCase) VerifyQR(ctx context.Context, p entities.Principal, in VerifyQRInput) (QRVerification, error) {
	if p.IsAnonymous() {
		return QRVerification{}, ErrUnauthorized
	}

	parts := strings.Split(strings.TrimSpace(in.QRData), ":")
	if len(parts) != 4 {
		return QRVerification{}, ErrInvalidQRData
	}
	kind, projectID, entityID := parts[0], parts[1], parts[2]
	if kind != "milestone" && kind != "property" {
		return QRVerification{}, ErrInvalidQRData
	}

	var (
		qrCodeData string
		secret     string
		endpoint   string
		limits     UploadLimits
	)
	switch kind {
	case "milestone":
		m, err := u.milestones.GetByID(ctx, entityID)
		if err != nil {
			return QRVerification{}, err
		}
		if m.ID == "" || m.ProjectID != projectID {
			return QRVerification{}, ErrQREntityMismatch
		}
		qrCodeData, secret = m.QRCodeData, m.QRCodeSecret
		endpoint = fmt.Sprintf("/v1/milestones/%s/secure-upload", m.ID)
		limits = milestoneLimits()
	case "property":
		prop, err := u.properties.GetByID(ctx, entityID)
		if err != nil {
			return QRVerification{}, err
		}
		if prop.ID == "" || prop.ProjectID != projectID {
			return QRVerification{}, ErrQREntityMismatch
		}
		qrCodeData, secret = prop.QRCodeData, prop.QRCodeSecret
		endpoint = fmt.Sprintf("/v1/properties/%s/secure-upload", prop.ID)
		limits = propertyLimits()
	}

	if qrCodeData != strings.TrimSpace(in.QRData) {
		return QRVerification{}, ErrQREntityMismatch
	}

	if err := u.requireProjectDeveloper(ctx, p, projectID); err != nil {
		return QRVerification{}, err
	}
	if !isMobileRequest(in.DeviceInfo, in.UserAgent) {
		return QRVerification{}, ErrDesktopUploadBlocked
	}

	log.Printf("[evidence][usecase] qr verified kind=%s entity_id=%s project_id=%s", kind, entityID, projectID)
	return QRVerification{
		Kind:           kind,
		EntityID:       entityID,
		ProjectID:      projectID,
		UploadToken:    uploadTokenFromSecret(secret),
		UploadEndpoint: endpoint,
		Limits:         limits,
	}, nil
}

func (u *EvidenceUseCase) UploadMilestoneEvidence(ctx context.Context, p entities.Principal, milestoneID string, in UploadInput) (UploadResult, error) {
	milestone, err := u.milestones.GetByID(ctx, strings.TrimSpace(milestoneID))
	if err != nil {
		return UploadResult{}, err
	}
	if milestone.ID == "" {
		return UploadResult{}, ErrMilestoneNotFound
	}

	if err := u.admitUpload(ctx, p, milestone.ProjectID, milestone.QRCodeSecret, milestoneLimits(), in); err != nil {
		return UploadResult{}, err
	}

	photos, videos, shas, urls, err := u.ingestFiles(ctx, milestoneMediaFolder, in)
	if err != nil {
		return UploadResult{}, err
	}

	updated, err := u.milestones.AppendMedia(ctx, milestone.ID, photos, videos)
	if err != nil {
		return UploadResult{}, err
	}
	if updated.ID == "" {
		return UploadResult{}, ErrMilestoneNotFound
	}

	u.postUpdate(ctx, entities.ConstructionUpdate{
		ID:          uuid.NewString(),
		ProjectID:   milestone.ProjectID,
		MilestoneID: milestone.ID,
		Title:       fmt.Sprintf("Construction update: %s", milestone.Name),
		Description: in.Description,
		MediaCount:  len(photos) + len(videos),
		OwnerOnly:   false,
		CreatedAt:   time.Now().UTC(),
	})

	log.Printf("[evidence][usecase] milestone evidence attached milestone_id=%s photos=%d videos=%d", milestone.ID, len(photos), len(videos))
	u.bus.Publish(ctx, events.EvidenceAttached{
		Kind:      "milestone",
		ProjectID: milestone.ProjectID,
		EntityID:  milestone.ID,
		SHA256s:   shas,
		URLs:      urls,
	})
	return UploadResult{Kind: "milestone", EntityID: milestone.ID, Photos: photos, Videos: videos}, nil
}

func (u *EvidenceUseCase) UploadPropertyEvidence(ctx context.Context, p entities.Principal, propertyID string, in UploadInput) (UploadResult, error) {
	property, err := u.properties.GetByID(ctx, strings.TrimSpace(propertyID))
	if err != nil {
		return UploadResult{}, err
	}
	if property.ID == "" {
		return UploadResult{}, ErrPropertyNotFound
	}

	if err := u.admitUpload(ctx, p, property.ProjectID, property.QRCodeSecret, propertyLimits(), in); err != nil {
		return UploadResult{}, err
	}

	photos, videos, shas, urls, err := u.ingestFiles(ctx, propertyMediaFolder, in)
	if err != nil {
		return UploadResult{}, err
	}

	updated, err := u.properties.AppendMedia(ctx, property.ID, photos, videos)
	if err != nil {
		return UploadResult{}, err
	}
	if updated.ID == "" {
		return UploadResult{}, ErrPropertyNotFound
	}

	u.postUpdate(ctx, entities.ConstructionUpdate{
		ID:          uuid.NewString(),
		ProjectID:   property.ProjectID,
		PropertyID:  property.ID,
		Title:       fmt.Sprintf("Unit update: %s", property.UnitNumber),
		Description: in.Description,
		MediaCount:  len(photos) + len(videos),
		OwnerOnly:   true,
		CreatedAt:   time.Now().UTC(),
	})

	log.Printf("[evidence][usecase] property evidence attached property_id=%s photos=%d videos=%d", property.ID, len(photos), len(videos))
	u.bus.Publish(ctx, events.EvidenceAttached{
		Kind:      "property",
		ProjectID: property.ProjectID,
		EntityID:  property.ID,
		OwnerID:   property.BuyerID,
		SHA256s:   shas,
		URLs:      urls,
	})
	return UploadResult{Kind: "property", EntityID: property.ID, Photos: photos, Videos: videos}, nil
}

// admitUpload runs the admission gauntlet in a fixed order: ownership, token,
// mobile gate, camera gate, limits. Nothing is persisted before all pass.
func (u *EvidenceUseCase) admitUpload(ctx context.Context, p entities.Principal, projectID, secret string, limits UploadLimits, in UploadInput) error {
	if p.IsAnonymous() {
		return ErrUnauthorized
	}
	if err := u.requireProjectDeveloper(ctx, p, projectID); err != nil {
		return err
	}
	if in.UploadToken == "" || in.UploadToken != uploadTokenFromSecret(secret) {
		return ErrInvalidUploadToken
	}
	if !isMobileRequest(in.DeviceInfo, in.UserAgent) {
		return ErrDesktopUploadBlocked
	}
	if !in.CaptureMetadata.CameraCaptured {
		return ErrGalleryUploadBlocked
	}
	if len(in.Images) == 0 && len(in.Videos) == 0 {
		return ErrNoFiles
	}
	if len(in.Images) > limits.MaxImages || len(in.Videos) > limits.MaxVideos {
		return ErrUploadLimitExceeded
	}
	for _, f := range in.Images {
		if int64(len(f.Data)) > limits.MaxImageBytes {
			return ErrFileTooLarge
		}
	}
	for _, f := range in.Videos {
		if int64(len(f.Data)) > limits.MaxVideoBytes {
			return ErrFileTooLarge
		}
	}
	return nil
}

// ingestFiles dedupes each file against the object store by content hash and
// returns the media entries to append. The store is probed per file; upload
// happens at most once per sha256 (overwrite stays off regardless).
func (u *EvidenceUseCase) ingestFiles(ctx context.Context, folder string, in UploadInput) (photos, videos []entities.MediaEntry, shas, urls []string, err error) {
	now := time.Now().UTC()

	ingest := func(f UploadFile, resourceType string) (entities.MediaEntry, error) {
		sum := sha256.Sum256(f.Data)
		sha := hex.EncodeToString(sum[:])
		publicID := folder + "/" + sha

		exists, err := u.storage.Exists(ctx, publicID, resourceType)
		if err != nil {
			return entities.MediaEntry{}, err
		}
		var url string
		if exists {
			url = u.storage.URLFor(publicID, resourceType)
			log.Printf("[evidence][usecase] dedupe hit sha256=%s key=%s", sha, publicID)
		} else {
			url, err = u.storage.Upload(ctx, f.Data, publicID, resourceType)
			if err != nil {
				return entities.MediaEntry{}, err
			}
		}

		shas = append(shas, sha)
		urls = append(urls, url)
		return entities.MediaEntry{
			SHA256:          sha,
			URL:             url,
			UploadedAt:      now,
			Description:     in.Description,
			CaptureMetadata: in.CaptureMetadata,
			DeviceInfo:      in.DeviceInfo,
			QRVerified:      true,
		}, nil
	}

	for _, f := range in.Images {
		entry, err := ingest(f, "image")
		if err != nil {
			return nil, nil, nil, nil, err
		}
		photos = append(photos, entry)
	}
	for _, f := range in.Videos {
		entry, err := ingest(f, "video")
		if err != nil {
			return nil, nil, nil, nil, err
		}
		videos = append(videos, entry)
	}
	return photos, videos, shas, urls, nil
}

func (u *EvidenceUseCase) postUpdate(ctx context.Context, upd entities.ConstructionUpdate) {
	created, err := u.updates.Create(ctx, upd)
	if err != nil {
		log.Printf("[evidence][usecase] construction update persist failed project_id=%s err=%v", upd.ProjectID, err)
		return
	}
	u.bus.Publish(ctx, events.ConstructionUpdatePosted{Update: created})
}

// HandleEvidenceAttached forwards content hashes to the blockchain
// middleware. Best-effort: failures are logged and never propagate.
func (u *EvidenceUseCase) HandleEvidenceAttached(ctx context.Context, ev events.Event) {
	attached, ok := ev.(events.EvidenceAttached)
	if !ok || u.anchor == nil {
		return
	}

	var err error
	switch attached.Kind {
	case "milestone":
		err = u.anchor.AnchorMilestone(ctx, attached.EntityID, attached.ProjectID, attached.SHA256s)
	case "property":
		err = u.anchor.AnchorProperty(ctx, attached.EntityID, attached.ProjectID, attached.SHA256s)
	}
	if err != nil {
		log.Printf("[evidence][anchor] anchoring failed kind=%s entity_id=%s err=%v", attached.Kind, attached.EntityID, err)
	}
}

func (u *EvidenceUseCase) requireProjectDeveloper(ctx context.Context, p entities.Principal, projectID string) error {
	if p.Role == entities.RoleStaff {
		return nil
	}

	dev, err := u.auth.DeveloperFor(ctx, p)
	if err != nil {
		return err
	}
	if dev.ID == "" {
		return ErrForbidden
	}
	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.ID == "" || project.DeveloperID != dev.ID {
		return ErrForbidden
	}
	return nil
}

func milestoneLimits() UploadLimits {
	return UploadLimits{MaxImages: maxMilestoneImages, MaxVideos: maxVideos, MaxImageBytes: maxImageBytes, MaxVideoBytes: maxVideoBytes}
}

func propertyLimits() UploadLimits {
	return UploadLimits{MaxImages: maxPropertyImages, MaxVideos: maxVideos, MaxImageBytes: maxImageBytes, MaxVideoBytes: maxVideoBytes}
}

// isMobileRequest implements the mobile gate: the client-reported flag or a
// mobile user agent admits the request.
func isMobileRequest(di entities.DeviceInfo, userAgent string) bool {
	if di.IsMobile {
		return true
	}
	ua := strings.ToLower(userAgent)
	for _, marker := range []string{"android", "iphone", "ipad", "mobile"} {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}
