package model

import "gorm.io/gorm"

type LeadStatus string

const (
	LeadStatusNew           LeadStatus = "New"
	LeadStatusContacted     LeadStatus = "Contacted"
	LeadStatusQualified     LeadStatus = "Qualified"
	LeadStatusNotInterested LeadStatus = "Not Interested"
)

type VisitorLead struct {
	gorm.Model
	Name   string     `json:"name" gorm:"not null"`
	Phone  string     `json:"phone" gorm:"not null"` // digits only
	Source string     `json:"source" gorm:"default:'Projects Page'"`
	Status LeadStatus `json:"status" gorm:"default:'New'"`
	IsRead bool       `json:"isRead" gorm:"default:false"`
}
