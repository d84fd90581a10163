package models

import "gorm.io/gorm"

// Testimonial represents a client review shown on a location page
type Testimonial struct {
	gorm.Model
	LocationID uint    `json:"location_id" gorm:"not null;index"`
	Author     string  `json:"author" gorm:"size:120;not null"`
	Company    string  `json:"company" gorm:"size:200"`
	Content    string  `json:"content" gorm:"type:text;not null"`
	AvatarURL  string  `json:"avatar_url" gorm:"size:500"`
	Rating     float64 `json:"rating" gorm:"not null;default:5"`
}
