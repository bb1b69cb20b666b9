package model

import "gorm.io/gorm"

type EnquiryStatus string

const (
	EnquiryStatusNew        EnquiryStatus = "New"
	EnquiryStatusContacted  EnquiryStatus = "Contacted"
	EnquiryStatusInProgress EnquiryStatus = "In Progress"
	EnquiryStatusClosed     EnquiryStatus = "Closed"
)

type ProjectEnquiry struct {
	gorm.Model
	ProjectID uint `json:"projectId" gorm:"index;not null"`
	// ProjectName is a snapshot taken at creation time; it is not kept in
	// sync with later project renames.
	ProjectName string        `json:"projectName" gorm:"not null"`
	Name        string        `json:"name" gorm:"not null"`
	Email       string        `json:"email" gorm:"not null"`
	Phone       string        `json:"phone" gorm:"not null"`
	Message     string        `json:"message" gorm:"type:text;not null"`
	Status      EnquiryStatus `json:"status" gorm:"default:'New'"`
	IsRead      bool          `json:"isRead" gorm:"default:false"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}
