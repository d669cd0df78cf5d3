package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "apnaghar/internal/adapter/http/dto/request"
	response "apnaghar/internal/adapter/http/dto/response"
	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase"
	"apnaghar/internal/usecase/interfaces"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for projects, properties, milestones,
// developers, and the construction update feed.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateProject creates a project for the authenticated builder's developer
// profile.
func (h *CatalogHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), CurrentPrincipal(c), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

// ListProjects is the public catalog listing with filters, ordering, and
// pagination from query parameters.
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	filter := interfaces.ProjectFilter{
		Status:      entities.ProjectStatus(c.Query("status")),
		ProjectType: c.Query("project_type"),
		City:        c.Query("city"),
		DeveloperID: c.Query("developer"),
	}
	if v := c.Query("verified"); v != "" {
		b := v == "true" || v == "1"
		filter.Verified = &b
	}
	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}
	if v := c.Query("property_types"); v != "" {
		filter.PropertyTypes = strings.Split(v, ",")
	}

	page := interfaces.Page{}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page.Number = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", "0")); err == nil {
		page.Size = v
	}

	projects, err := h.usecase.ListProjects(c.Request.Context(), filter, interfaces.ProjectOrdering(c.Query("ordering")), page)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": response.FromProjects(projects), "page": page.Number})
}

func (h *CatalogHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *CatalogHandler) GetDeveloper(c *gin.Context) {
	dev, err := h.usecase.GetDeveloper(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeveloper(dev))
}

func (h *CatalogHandler) CreateProperty(c *gin.Context) {
	var payload request.CreatePropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	property, err := h.usecase.CreateProperty(c.Request.Context(), CurrentPrincipal(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProperty(property))
}

func (h *CatalogHandler) CreateMilestone(c *gin.Context) {
	var payload request.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	milestone, err := h.usecase.CreateMilestone(c.Request.Context(), CurrentPrincipal(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMilestone(milestone))
}

func (h *CatalogHandler) ListProperties(c *gin.Context) {
	properties, err := h.usecase.ListProperties(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": response.FromProperties(properties)})
}

func (h *CatalogHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.usecase.ListMilestones(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": response.FromMilestones(milestones)})
}

func (h *CatalogHandler) ListUpdates(c *gin.Context) {
	updates, err := h.usecase.ListUpdates(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": response.FromConstructionUpdates(updates)})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeveloperNotFound):
		return pkg.NewDomainErrorSimple("DEVELOPER_NOT_FOUND", "Developer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeveloperProfileRequired):
		return pkg.NewDomainErrorSimple("DEVELOPER_PROFILE_REQUIRED", "A developer profile is required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDuplicateUnitNumber):
		return pkg.NewDomainErrorSimple("DUPLICATE_UNIT_NUMBER", "Unit number already exists in this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProjectInput), errors.Is(err, usecase.ErrInvalidPropertyInput), errors.Is(err, usecase.ErrInvalidMilestoneInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
