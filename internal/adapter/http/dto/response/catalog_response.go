package response

import (
	"time"

	"apnaghar/internal/domain/entities"
)

type ProjectResponse struct {
	ID                 string    `json:"id"`
	DeveloperID        string    `json:"developer_id"`
	DeveloperVerified  bool      `json:"developer_verified"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	ProjectType        string    `json:"project_type"`
	City               string    `json:"city"`
	Locality           string    `json:"locality,omitempty"`
	Status             string    `json:"status"`
	StartingPrice      float64   `json:"starting_price"`
	PropertyTypes      []string  `json:"property_types,omitempty"`
	ExpectedCompletion time.Time `json:"expected_completion,omitempty"`
	VerificationScore  float64   `json:"verification_score"`
	TotalUnits         int       `json:"total_units"`
	AvailableUnits     int       `json:"available_units"`
	ViewsCount         int64     `json:"views_count"`
	AvgRating          *float64  `json:"avg_rating,omitempty"`
	ReviewCount        int       `json:"review_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                 p.ID,
		DeveloperID:        p.DeveloperID,
		DeveloperVerified:  p.DeveloperVerified,
		Name:               p.Name,
		Description:        p.Description,
		ProjectType:        p.ProjectType,
		City:               p.City,
		Locality:           p.Locality,
		Status:             string(p.Status),
		StartingPrice:      p.StartingPrice,
		PropertyTypes:      p.PropertyTypes,
		ExpectedCompletion: p.ExpectedCompletion,
		VerificationScore:  p.VerificationScore,
		TotalUnits:         p.TotalUnits,
		AvailableUnits:     p.AvailableUnits,
		ViewsCount:         p.ViewsCount,
		AvgRating:          p.AvgRating,
		ReviewCount:        p.ReviewCount,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

type PropertyResponse struct {
	ID           string                `json:"id"`
	ProjectID    string                `json:"project_id"`
	UnitNumber   string                `json:"unit_number"`
	Floor        int                   `json:"floor"`
	PropertyType string                `json:"property_type"`
	Price        float64               `json:"price"`
	Status       string                `json:"status"`
	BuyerID      string                `json:"buyer_id,omitempty"`
	UnitPhotos   []entities.MediaEntry `json:"unit_photos,omitempty"`
	UnitVideos   []entities.MediaEntry `json:"unit_videos,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		UnitNumber:   p.UnitNumber,
		Floor:        p.Floor,
		PropertyType: p.PropertyType,
		Price:        p.Price,
		Status:       string(p.Status),
		BuyerID:      p.BuyerID,
		UnitPhotos:   p.UnitPhotos,
		UnitVideos:   p.UnitVideos,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProperties(ps []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProperty(p))
	}
	return out
}

type MilestoneResponse struct {
	ID                 string                `json:"id"`
	ProjectID          string                `json:"project_id"`
	Name               string                `json:"name"`
	Description        string                `json:"description,omitempty"`
	PhaseNumber        int                   `json:"phase_number"`
	Status             string                `json:"status"`
	ProgressPercentage float64               `json:"progress_percentage"`
	Photos             []entities.MediaEntry `json:"photos,omitempty"`
	Videos             []entities.MediaEntry `json:"videos,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func FromMilestone(m entities.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:                 m.ID,
		ProjectID:          m.ProjectID,
		Name:               m.Name,
		Description:        m.Description,
		PhaseNumber:        m.PhaseNumber,
		Status:             string(m.Status),
		ProgressPercentage: m.ProgressPercentage,
		Photos:             m.Photos,
		Videos:             m.Videos,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func FromMilestones(ms []entities.Milestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMilestone(m))
	}
	return out
}

type DeveloperResponse struct {
	ID                 string    `json:"id"`
	CompanyName        string    `json:"company_name"`
	RegistrationNumber string    `json:"registration_number"`
	Verified           bool      `json:"verified"`
	VerificationScore  float64   `json:"verification_score"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromDeveloper(d entities.Developer) DeveloperResponse {
	return DeveloperResponse{
		ID:                 d.ID,
		CompanyName:        d.CompanyName,
		RegistrationNumber: d.RegistrationNumber,
		Verified:           d.Verified,
		VerificationScore:  d.VerificationScore,
		CreatedAt:          d.CreatedAt,
	}
}

type ConstructionUpdateResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	MilestoneID string    `json:"milestone_id,omitempty"`
	PropertyID  string    `json:"property_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaCount  int       `json:"media_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromConstructionUpdate(u entities.ConstructionUpdate) ConstructionUpdateResponse {
	return ConstructionUpdateResponse{
		ID:          u.ID,
		ProjectID:   u.ProjectID,
		MilestoneID: u.MilestoneID,
		PropertyID:  u.PropertyID,
		Title:       u.Title,
		Description: u.Description,
		MediaCount:  u.MediaCount,
		CreatedAt:   u.CreatedAt,
	}
}

func FromConstructionUpdates(us []entities.ConstructionUpdate) []ConstructionUpdateResponse {
	out := make([]ConstructionUpdateResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromConstructionUpdate(u))
	}
	return out
}
