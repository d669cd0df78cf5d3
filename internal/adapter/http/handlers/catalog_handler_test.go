package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"apnaghar/internal/adapter/http/handlers/mocks"
	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase"
	"apnaghar/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asBuilder(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Set(principalContextKey, entities.Principal{ID: "builder-1", Role: entities.RoleBuilder})
		c.Next()
	})
}

func TestCatalogHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuilder(r)
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"city":"Pune"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("buyer forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateProject(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Project{}, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Skyline Towers","city":"Pune"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuilder(r)
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateProject(gomock.Any(), entities.Principal{ID: "builder-1", Role: entities.RoleBuilder}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Principal, in usecase.CreateProjectInput) (entities.Project, error) {
				if in.Name != "Skyline Towers" || in.City != "Pune" || in.StartingPrice != 4500000 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Project{ID: "proj-1", Name: in.Name, City: in.City, Status: entities.ProjectStatusUpcoming}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Skyline Towers","city":"Pune","starting_price":4500000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["name"] != "Skyline Towers" || body["status"] != "upcoming" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCatalogHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)

	uc.EXPECT().ListProjects(gomock.Any(), gomock.Any(), interfaces.ProjectOrdering("popular"), interfaces.Page{Number: 2, Size: 10}).
		DoAndReturn(func(_ context.Context, filter interfaces.ProjectFilter, _ interfaces.ProjectOrdering, _ interfaces.Page) ([]entities.Project, error) {
			if filter.City != "Pune" || filter.Verified == nil || !*filter.Verified {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			if filter.MinPrice == nil || *filter.MinPrice != 1000000 {
				t.Fatalf("unexpected min price: %+v", filter.MinPrice)
			}
			return []entities.Project{{ID: "proj-1"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/projects?city=Pune&verified=true&min_price=1000000&ordering=popular&page=2&page_size=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Projects []map[string]interface{} `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(body.Projects))
	}
}

func TestCatalogHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id", h.GetProject)

	uc.EXPECT().GetProject(gomock.Any(), "proj-missing").
		Return(entities.Project{}, usecase.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCatalogHandler_CreateProperty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate unit number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuilder(r)
		r.POST("/v1/projects/:id/properties", h.CreateProperty)

		uc.EXPECT().CreateProperty(gomock.Any(), gomock.Any(), "proj-1", gomock.Any()).
			Return(entities.Property{}, usecase.ErrDuplicateUnitNumber)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/properties", bytes.NewBufferString(`{"unit_number":"A-101","price":4500000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuilder(r)
		r.POST("/v1/projects/:id/properties", h.CreateProperty)

		uc.EXPECT().CreateProperty(gomock.Any(), gomock.Any(), "proj-1", usecase.CreatePropertyInput{UnitNumber: "A-101", Floor: 1, PropertyType: "2BHK", Price: 4500000}).
			Return(entities.Property{ID: "prop-1", ProjectID: "proj-1", UnitNumber: "A-101", Status: entities.PropertyStatusAvailable}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/properties", bytes.NewBufferString(`{"unit_number":"A-101","floor":1,"property_type":"2BHK","price":4500000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["unit_number"] != "A-101" || body["status"] != "available" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCatalogHandler_CreateMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing phase number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuilder(r)
		r.POST("/v1/projects/:id/milestones", h.CreateMilestone)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/milestones", bytes.NewBufferString(`{"name":"Foundation"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		asBuilder(r)
		r.POST("/v1/projects/:id/milestones", h.CreateMilestone)

		uc.EXPECT().CreateMilestone(gomock.Any(), gomock.Any(), "proj-1", usecase.CreateMilestoneInput{Name: "Foundation", PhaseNumber: 1}).
			Return(entities.Milestone{ID: "ms-1", ProjectID: "proj-1", Name: "Foundation", PhaseNumber: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/milestones", bytes.NewBufferString(`{"name":"Foundation","phase_number":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
