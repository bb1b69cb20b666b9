package model

import "gorm.io/gorm"

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
	ContactStatusResolved  ContactStatus = "resolved"
)

type Contact struct {
	gorm.Model
	Name    string        `json:"name" gorm:"not null"`
	Email   string        `json:"email" gorm:"not null"`
	Phone   string        `json:"phone" gorm:"not null"`
	Subject string        `json:"subject"`
	Message string        `json:"message" gorm:"type:text;not null"`
	Status  ContactStatus `json:"status" gorm:"default:'new'"`
	Notes   string        `json:"notes" gorm:"type:text"`

	UserID *uint `json:"userId" gorm:"index"`
	User   *User `json:"-" gorm:"foreignKey:UserID"`
}

func (c *Contact) SubmittedBy() *SubmitterProfile {
	return c.User.Submitter()
}
