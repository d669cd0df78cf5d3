package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	request "apnaghar/internal/adapter/http/dto/request"
	"apnaghar/internal/usecase"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEvidencePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid upload payload", http.StatusBadRequest)

// EvidenceHandler handles QR verification and the secure camera-only upload
// endpoints for milestones and properties.
type EvidenceHandler struct {
	usecase usecase.IEvidenceUseCase
}

func NewEvidenceHandler(uc usecase.IEvidenceUseCase) *EvidenceHandler {
	return &EvidenceHandler{usecase: uc}
}

// VerifyQR exchanges scanned QR data for an upload capability. Serves both
// the milestone and property verification routes; the QR payload itself
// carries the entity kind.
func (h *EvidenceHandler) VerifyQR(c *gin.Context) {
	var payload request.VerifyQRRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
		return
	}

	verification, err := h.usecase.VerifyQR(c.Request.Context(), CurrentPrincipal(c), usecase.VerifyQRInput{
		QRData:     payload.QRData,
		DeviceInfo: payload.DeviceInfo.ToEntity(),
		UserAgent:  c.GetHeader("User-Agent"),
	})
	if err != nil {
		log.Printf("[evidence][handler] verify-qr failed err=%v", err)
		appErr := mapEvidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, verification)
}

// SecureUploadMilestone ingests camera-captured evidence for a milestone.
func (h *EvidenceHandler) SecureUploadMilestone(c *gin.Context) {
	in, ok := h.parseUploadForm(c)
	if !ok {
		return
	}

	result, err := h.usecase.UploadMilestoneEvidence(c.Request.Context(), CurrentPrincipal(c), c.Param("id"), in)
	if err != nil {
		log.Printf("[evidence][handler] milestone upload failed milestone_id=%s err=%v", c.Param("id"), err)
		appErr := mapEvidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SecureUploadProperty ingests camera-captured evidence for a property unit.
func (h *EvidenceHandler) SecureUploadProperty(c *gin.Context) {
	in, ok := h.parseUploadForm(c)
	if !ok {
		return
	}

	result, err := h.usecase.UploadPropertyEvidence(c.Request.Context(), CurrentPrincipal(c), c.Param("id"), in)
	if err != nil {
		log.Printf("[evidence][handler] property upload failed property_id=%s err=%v", c.Param("id"), err)
		appErr := mapEvidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// parseUploadForm reads the multipart body: scalar fields plus images[] and
// videos[] file parts. On failure it writes the error response and returns
// ok=false.
func (h *EvidenceHandler) parseUploadForm(c *gin.Context) (usecase.UploadInput, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
		return usecase.UploadInput{}, false
	}

	in := usecase.UploadInput{
		UploadToken: formValue(form, "upload_token"),
		Description: formValue(form, "description"),
		UserAgent:   c.GetHeader("User-Agent"),
	}

	if raw := formValue(form, "capture_metadata"); raw != "" {
		var meta request.CaptureMetadataRequest
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
			return usecase.UploadInput{}, false
		}
		in.CaptureMetadata = meta.ToEntity()
	}
	if raw := formValue(form, "device_info"); raw != "" {
		var info request.DeviceInfoRequest
		if err := json.Unmarshal([]byte(raw), &info); err != nil {
			c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
			return usecase.UploadInput{}, false
		}
		in.DeviceInfo = info.ToEntity()
	}

	images, err := readFileParts(form.File["images"])
	if err != nil {
		c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
		return usecase.UploadInput{}, false
	}
	videos, err := readFileParts(form.File["videos"])
	if err != nil {
		c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
		return usecase.UploadInput{}, false
	}
	in.Images = images
	in.Videos = videos
	return in, true
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func readFileParts(headers []*multipart.FileHeader) ([]usecase.UploadFile, error) {
	files := make([]usecase.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, usecase.UploadFile{Name: header.Filename, Data: data})
	}
	return files, nil
}

func mapEvidenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQRData):
		return pkg.NewDomainErrorSimple("INVALID_QR_DATA", "QR data could not be parsed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQREntityMismatch):
		return pkg.NewDomainErrorSimple("QR_ENTITY_MISMATCH", "QR data does not match the target entity", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidUploadToken):
		return pkg.NewDomainErrorSimple("invalid_token", "Upload token is invalid", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDesktopUploadBlocked):
		return pkg.NewDomainErrorSimple("DESKTOP_UPLOAD_BLOCKED", "Uploads are only accepted from mobile devices", http.StatusForbidden)
	case errors.Is(err, usecase.ErrGalleryUploadBlocked):
		return pkg.NewDomainErrorSimple("GALLERY_UPLOAD_BLOCKED", "Only camera-captured media is accepted", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUploadLimitExceeded):
		return pkg.NewDomainErrorSimple("UPLOAD_LIMIT_EXCEEDED", "Too many files for this entity", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the size limit", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoFiles):
		return pkg.NewDomainErrorSimple("NO_FILES", "At least one file is required", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
