package entities

import "time"

type ProjectStatus string

const (
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusDelayed   ProjectStatus = "delayed"
	ProjectStatusPaused    ProjectStatus = "paused"
)

// Project is a development owned by a Developer.
//
// Storage model (DynamoDB):
//   - PK: id
//
// TotalUnits/AvailableUnits/ViewsCount are materialized counters. The catalog
// store recomputes AvailableUnits from property rows on every property status
// mutation; the persisted value is a cache, not the truth.
//
// DeveloperVerified mirrors the owning Developer's verification flag so list
// filters don't fan out to the developers table.
type Project struct {
	ID                 string        `json:"id"`
	DeveloperID        string        `json:"developer_id"`
	DeveloperVerified  bool          `json:"developer_verified"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	ProjectType        string        `json:"project_type"`
	City               string        `json:"city"`
	Locality           string        `json:"locality"`
	Status             ProjectStatus `json:"status"`
	StartingPrice      float64       `json:"starting_price"`
	PropertyTypes      []string      `json:"property_types"`
	ExpectedCompletion time.Time     `json:"expected_completion"`
	VerificationScore  float64       `json:"verification_score"`
	TotalUnits         int           `json:"total_units"`
	AvailableUnits     int           `json:"available_units"`
	ViewsCount         int64         `json:"views_count"`
	AvgRating          *float64      `json:"avg_rating,omitempty"`
	ReviewCount        int           `json:"review_count"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
