// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleOffice indicates a staffing office account, bound 1:1 to an Office.
	RoleOffice Role = "office"
	// RoleCustomer indicates a customer account, not bound to any office.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOffice, RoleCustomer:
		return true
	default:
		return false
	}
}

// Account is a login identity from the static credential table. There is no
// self-service registration; accounts are seeded alongside the offices.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email        string    // Login identifier, matched exactly.
	PasswordHash string    // bcrypt hash of the seeded password.
	Role         Role      // Either office or customer.
	OfficeID     uuid.UUID // The owned office for office-role accounts; uuid.Nil otherwise.
}

// IsOffice reports whether the account acts on behalf of an office.
func (a *Account) IsOffice() bool {
	return a.Role == RoleOffice
}
