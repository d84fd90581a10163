package models

import "gorm.io/gorm"

// Office represents a bookable office space within a location
type Office struct {
	gorm.Model
	LocationID uint     `json:"location_id" gorm:"not null;index"`
	Name       string   `json:"name" gorm:"size:200;not null"`
	Address    string   `json:"address" gorm:"size:500"`
	Features   []string `json:"features" gorm:"serializer:json;type:text"`
	BadgeLabel string   `json:"badge_label" gorm:"size:60"`
	BadgeColor string   `json:"badge_color" gorm:"size:30"`
}
