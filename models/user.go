package models

import "gorm.io/gorm"

// User is the profile record behind a session. Password holds the bcrypt
// hash and never leaves the API.
type User struct {
	gorm.Model
	Email    string `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"size:191" json:"full_name"`
}

// DisplayName is the comment byline: full name when the profile has one,
// otherwise the email.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
