package model

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectType string

const (
	ProjectTypeLuxuryVillas      ProjectType = "Luxury Villas"
	ProjectTypePremiumApartments ProjectType = "Premium Apartments"
	ProjectTypeLuxuryFarmhouse   ProjectType = "Luxury Farmhouse"
	ProjectTypePenthouse         ProjectType = "Penthouse"
	ProjectTypeRowHouse          ProjectType = "Row House"
	ProjectTypeOther             ProjectType = "Other"
)

type ProjectStatus string

const (
	ProjectStatusUpcoming    ProjectStatus = "Upcoming"
	ProjectStatusOngoing     ProjectStatus = "Ongoing"
	ProjectStatusCompleted   ProjectStatus = "Completed"
	ProjectStatusReadyToMove ProjectStatus = "Ready to Move"
)

// Specifications are display strings, not measurements; the site renders
// them verbatim ("3 & 4 BHK", "2400 sq.ft.").
type Specifications struct {
	Bedrooms  string `json:"bedrooms"`
	Bathrooms string `json:"bathrooms"`
	Area      string `json:"area"`
	Parking   string `json:"parking"`
}

type Project struct {
	gorm.Model
	Name        string        `json:"name" gorm:"not null"`
	Slug        string        `json:"slug" gorm:"uniqueIndex"`
	Location    string        `json:"location" gorm:"not null"`
	Type        ProjectType   `json:"type" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Price       string        `json:"price" gorm:"not null"`
	Status      ProjectStatus `json:"status" gorm:"default:'Upcoming'"`
	Featured    bool          `json:"featured" gorm:"default:false"`
	IsActive    bool          `json:"isActive" gorm:"default:true"`

	// Image and Gallery hold reference paths into storage, never binary
	// content.
	Image          string                               `json:"image"`
	Gallery        datatypes.JSONSlice[string]          `json:"gallery"`
	Amenities      datatypes.JSONSlice[string]          `json:"amenities"`
	Specifications datatypes.JSONType[Specifications]   `json:"specifications"`
}

// BeforeCreate derives a URL slug from the project name, suffixing a
// counter when the name collides with an existing project.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		s := slug.Make(p.Name)

		var count int64
		tx.Model(&Project{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = fmt.Sprintf("%s-%d", s, count+1)
		}

		p.Slug = s
	}
	return nil
}

// FileRefs lists every storage reference owned by the project, primary
// image first.
func (p *Project) FileRefs() []string {
	var refs []string
	if p.Image != "" {
		refs = append(refs, p.Image)
	}
	refs = append(refs, p.Gallery...)
	return refs
}
