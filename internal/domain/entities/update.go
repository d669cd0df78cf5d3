package entities

import "time"

// ConstructionUpdate is a feed projection created when evidence is uploaded.
// Milestone uploads produce project-level updates visible to all buyers of
// units in the project; property uploads produce owner-only updates. The
// entity media list remains the source of truth.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type ConstructionUpdate struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	MilestoneID string    `json:"milestone_id,omitempty"`
	PropertyID  string    `json:"property_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaCount  int       `json:"media_count"`
	OwnerOnly   bool      `json:"owner_only"`
	CreatedAt   time.Time `json:"created_at"`
}
