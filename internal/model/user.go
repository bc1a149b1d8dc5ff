package model

import (
	"strings"
	"time"
)

// Role tags a user can hold. A user may hold several at once.
const (
	RoleStudent = "STUDENT"
	RoleTutor   = "TUTOR"
)

// StringList is a JSON-serialized list column.
type StringList []string

// Contains reports whether the list holds the exact value.
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}

// User is the profile aggregate, keyed by the identity subject (sub claim).
// Tutor-only fields (bio, specializations, credentials, verification, rate)
// stay zero-valued for students.
type User struct {
	Sub          string     `json:"sub" gorm:"primaryKey;size:64"`
	Name         string     `json:"name" gorm:"size:255"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	PhoneNumber  string     `json:"phoneNumber,omitempty" gorm:"size:32"`
	Roles        StringList `json:"roles" gorm:"type:json;serializer:json"`

	IDType   string `json:"idType,omitempty" gorm:"size:32"`
	IDNumber string `json:"idNumber,omitempty" gorm:"size:64"`

	// Student profile
	EducationLevel string `json:"educationLevel,omitempty" gorm:"size:128"`

	// Tutor profile
	Bio             string             `json:"bio,omitempty" gorm:"type:text"`
	Specializations SpecializationList `json:"specializations" gorm:"type:json;serializer:json"`
	Credentials     StringList         `json:"credentials" gorm:"type:json;serializer:json"`
	IsVerified      bool               `json:"isVerified" gorm:"default:false;index"`
	TokensPerHour   *int               `json:"tokensPerHour,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the role, case-insensitively.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
