package entities

import "time"

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "pending"
	MilestoneStatusInProgress MilestoneStatus = "in_progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
	MilestoneStatusDelayed    MilestoneStatus = "delayed"
	MilestoneStatusVerified   MilestoneStatus = "verified"
)

// Milestone is a construction phase of a Project, ordered by PhaseNumber.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type Milestone struct {
	ID                 string          `json:"id"`
	ProjectID          string          `json:"project_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	PhaseNumber        int             `json:"phase_number"`
	Status             MilestoneStatus `json:"status"`
	ProgressPercentage float64         `json:"progress_percentage"`
	Photos             []MediaEntry    `json:"photos,omitempty"`
	Videos             []MediaEntry    `json:"videos,omitempty"`
	QRCodeData         string          `json:"-"`
	QRCodeSecret       string          `json:"-"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
