package model

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	gorm.Model
	FullName string `json:"fullName" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"default:'user'"`
	IsActive bool   `json:"isActive" gorm:"default:true"`

	LastLogin *time.Time `json:"lastLogin"`
}

// PublicProfile is the projection returned by auth and user endpoints. The
// password hash never leaves the model.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"fullName":  u.FullName,
		"email":     u.Email,
		"role":      u.Role,
		"isActive":  u.IsActive,
		"createdAt": u.CreatedAt,
		"lastLogin": u.LastLogin,
	}
}

// SubmitterProfile is the restricted projection embedded when a lead-type
// record references its owning user.
type SubmitterProfile struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u *User) Submitter() *SubmitterProfile {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &SubmitterProfile{ID: u.ID, FullName: u.FullName, Email: u.Email}
}
