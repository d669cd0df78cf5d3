package request

import (
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase"
)

type CreateProjectRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	ProjectType        string   `json:"project_type"`
	City               string   `json:"city" binding:"required"`
	Locality           string   `json:"locality"`
	Status             string   `json:"status"`
	StartingPrice      float64  `json:"starting_price"`
	PropertyTypes      []string `json:"property_types"`
	ExpectedCompletion string   `json:"expected_completion"` // RFC3339
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	in := usecase.CreateProjectInput{
		Name:          r.Name,
		Description:   r.Description,
		ProjectType:   r.ProjectType,
		City:          r.City,
		Locality:      r.Locality,
		Status:        entities.ProjectStatus(r.Status),
		StartingPrice: r.StartingPrice,
		PropertyTypes: r.PropertyTypes,
	}
	if t, err := time.Parse(time.RFC3339, r.ExpectedCompletion); err == nil {
		in.ExpectedCompletion = t
	}
	return in
}

type CreatePropertyRequest struct {
	UnitNumber   string  `json:"unit_number" binding:"required"`
	Floor        int     `json:"floor"`
	PropertyType string  `json:"property_type"`
	Price        float64 `json:"price" binding:"required"`
}

func (r CreatePropertyRequest) ToInput() usecase.CreatePropertyInput {
	return usecase.CreatePropertyInput{
		UnitNumber:   r.UnitNumber,
		Floor:        r.Floor,
		PropertyType: r.PropertyType,
		Price:        r.Price,
	}
}

type CreateMilestoneRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PhaseNumber int    `json:"phase_number" binding:"required"`
}

func (r CreateMilestoneRequest) ToInput() usecase.CreateMilestoneInput {
	return usecase.CreateMilestoneInput{
		Name:        r.Name,
		Description: r.Description,
		PhaseNumber: r.PhaseNumber,
	}
}
