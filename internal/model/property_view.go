package model

import "gorm.io/gorm"

type ViewStatus string

const (
	ViewStatusNew           ViewStatus = "New"
	ViewStatusContacted     ViewStatus = "Contacted"
	ViewStatusInterested    ViewStatus = "Interested"
	ViewStatusNotInterested ViewStatus = "Not Interested"
)

// PropertyView is one visitor's recorded visit to a project page. Visitor
// identity fields are all optional; a view with a phone or email is a
// contactable lead.
type PropertyView struct {
	gorm.Model
	ProjectID    uint       `json:"projectId" gorm:"index;not null"`
	ProjectName  string     `json:"projectName" gorm:"not null"`
	VisitorName  string     `json:"visitorName"`
	VisitorPhone string     `json:"visitorPhone" gorm:"index"`
	VisitorEmail string     `json:"visitorEmail"`
	DeviceInfo   string     `json:"deviceInfo"`
	IPAddress    string     `json:"ipAddress"`
	ViewDuration int        `json:"viewDuration"` // seconds
	Status       ViewStatus `json:"status" gorm:"default:'New'"`
	IsRead       bool       `json:"isRead" gorm:"default:false"`
	Notes        string     `json:"notes" gorm:"type:text"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}
