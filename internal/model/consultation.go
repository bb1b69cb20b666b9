package model

import "gorm.io/gorm"

type PropertyType string

const (
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeFarmhouse PropertyType = "farmhouse"
	PropertyTypePlot      PropertyType = "plot"
)

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusContacted ConsultationStatus = "contacted"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

type Consultation struct {
	gorm.Model
	Name         string             `json:"name" gorm:"not null"`
	Email        string             `json:"email" gorm:"not null"`
	Phone        string             `json:"phone" gorm:"not null"`
	PropertyType PropertyType       `json:"propertyType" gorm:"not null"`
	Budget       string             `json:"budget"`
	Location     string             `json:"location"`
	Status       ConsultationStatus `json:"status" gorm:"default:'pending'"`
	Notes        string             `json:"notes" gorm:"type:text"`

	// Set only when the submitter was authenticated.
	UserID *uint `json:"userId" gorm:"index"`
	User   *User `json:"-" gorm:"foreignKey:UserID"`
}

func (c *Consultation) SubmittedBy() *SubmitterProfile {
	return c.User.Submitter()
}
