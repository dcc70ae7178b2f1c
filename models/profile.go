package models

import (
	"strings"

	"gorm.io/gorm"
)

// Profile is the application-level record behind an identity, 1:1 keyed by
// the identity provider's external id. Role values come from the policy
// package's closed set; anything else carries no capabilities.
type Profile struct {
	gorm.Model
	ExternalId string `gorm:"uniqueIndex:idx_profile_external_id"`
	Role       string
	FirstName  string
	LastName   string
	Email      string `gorm:"uniqueIndex:idx_profile_email"`
}

// DisplayName is what the header shows for the signed-in user: first and
// last name when present, the email otherwise.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}
