package entities

import "time"

// Client is the organisation a project is delivered for. Summaries resolve
// Project.ClientID to Client.Name with left-join semantics: a dangling
// reference yields an empty name, never an error.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
