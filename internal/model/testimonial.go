package model

import "gorm.io/gorm"

type Testimonial struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Role     string `json:"role" gorm:"not null"`
	Company  string `json:"company"`
	Content  string `json:"content" gorm:"type:text;not null"`
	Rating   int    `json:"rating" gorm:"default:5"` // 1-5
	Image    string `json:"image"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
	Featured bool   `json:"featured" gorm:"default:false"`
}
