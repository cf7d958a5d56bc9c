package dto

import "time"

// UserDTO is the synced profile view of an external identity.
type UserDTO struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      *string   `json:"email,omitempty"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
