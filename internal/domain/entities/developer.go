package entities

import "time"

// Developer is a builder's public profile. A builder principal owns at most
// one Developer profile; every Project is owned by exactly one Developer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (principal_id-index): principal_id
type Developer struct {
	ID                 string    `json:"id"`
	PrincipalID        string    `json:"principal_id"`
	CompanyName        string    `json:"company_name"`
	RegistrationNumber string    `json:"registration_number"`
	Verified           bool      `json:"verified"`
	VerificationScore  float64   `json:"verification_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
