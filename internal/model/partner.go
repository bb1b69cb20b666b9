package model

import "gorm.io/gorm"

type Expertise string

const (
	ExpertiseAgent      Expertise = "agent"
	ExpertiseArchitect  Expertise = "architect"
	ExpertiseDesigner   Expertise = "designer"
	ExpertiseSupplier   Expertise = "supplier"
	ExpertiseContractor Expertise = "contractor"
	ExpertiseInvestor   Expertise = "investor"
	ExpertiseOther      Expertise = "other"
)

type PartnerStatus string

const (
	PartnerStatusPending   PartnerStatus = "pending"
	PartnerStatusContacted PartnerStatus = "contacted"
	PartnerStatusApproved  PartnerStatus = "approved"
	PartnerStatusRejected  PartnerStatus = "rejected"
)

type Partner struct {
	gorm.Model
	Name      string        `json:"name" gorm:"not null"`
	Company   string        `json:"company" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null"`
	Phone     string        `json:"phone" gorm:"not null"`
	Expertise Expertise     `json:"expertise" gorm:"not null"`
	Message   string        `json:"message" gorm:"type:text"`
	Status    PartnerStatus `json:"status" gorm:"default:'pending'"`
	Notes     string        `json:"notes" gorm:"type:text"`

	UserID *uint `json:"userId" gorm:"index"`
	User   *User `json:"-" gorm:"foreignKey:UserID"`
}

func (p *Partner) SubmittedBy() *SubmitterProfile {
	return p.User.Submitter()
}
