// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// Office is a staffing agency tenant that lists workers and reviews
// reservation requests from customers. Offices are immutable reference data,
// seeded into the store at startup.
type Office struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the office.
	Name        string    `json:"name"`         // The office's public display name.
	Rating      float64   `json:"rating"`       // Aggregate customer rating, 0.0 to 5.0.
	ReviewCount int       `json:"review_count"` // Number of reviews behind the rating.
	LoginEmail  string    `json:"login_email"`  // The email the office account signs in with.
	LogoURL     string    `json:"logo_url"`     // Optional logo image reference.
}
