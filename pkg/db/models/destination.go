package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Destination is a browsable travel destination in the public catalog.
type Destination struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Slug         string         `gorm:"column:slug;not null;uniqueIndex"`
	Name         string         `gorm:"column:name;not null"`
	Country      string         `gorm:"column:country;not null"`
	Region       *string        `gorm:"column:region"`
	Summary      *string        `gorm:"column:summary"`
	Description  string         `gorm:"column:description;not null"`
	Highlights   pq.StringArray `gorm:"column:highlights;type:text[]"`
	HeroImageURL *string        `gorm:"column:hero_image_url"`
	Currency     string         `gorm:"column:currency;not null;default:'USD'"`
	Featured     bool           `gorm:"column:featured;not null;default:false"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`

	Activities []Activity `gorm:"foreignKey:DestinationID"`
}
