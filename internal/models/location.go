package models

import "gorm.io/gorm"

// Location is a city the company operates virtual offices in.
// Slug is the natural key used by the seeder.
type Location struct {
	gorm.Model
	Name         string        `json:"name" gorm:"size:120;not null"`
	Slug         string        `json:"slug" gorm:"size:120;not null;uniqueIndex"`
	Description  string        `json:"description" gorm:"type:text"`
	Address      string        `json:"address" gorm:"size:500"`
	Email        string        `json:"email" gorm:"size:255"`
	Phone        string        `json:"phone" gorm:"size:50"`
	HeroImageURL string        `json:"hero_image_url" gorm:"size:500"`
	Offices      []Office      `json:"offices,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Testimonials []Testimonial `json:"testimonials,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}
