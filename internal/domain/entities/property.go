package entities

import "time"

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusBooked    PropertyStatus = "booked"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusBlocked   PropertyStatus = "blocked"
)

// Property is a single unit within a Project. Status is a derived projection
// of the bookings against it; the booking engine is the sole writer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// QRCodeData is the full payload printed on the site QR
// ("property:{project_id}:{property_id}:{token}"); QRCodeSecret is the
// per-unit secret whose first 32 characters form the upload token.
type Property struct {
	ID           string         `json:"id"`
	ProjectID    string         `json:"project_id"`
	UnitNumber   string         `json:"unit_number"`
	Floor        int            `json:"floor"`
	PropertyType string         `json:"property_type"`
	Price        float64        `json:"price"`
	Status       PropertyStatus `json:"status"`
	BuyerID      string         `json:"buyer_id,omitempty"`
	UnitPhotos   []MediaEntry   `json:"unit_photos,omitempty"`
	UnitVideos   []MediaEntry   `json:"unit_videos,omitempty"`
	QRCodeData   string         `json:"-"`
	QRCodeSecret string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
