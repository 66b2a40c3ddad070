package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Activity is a bookable experience attached to a destination. The
// description column holds the raw vendor text; it is broken into
// sections at read time, never at write time.
type Activity struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DestinationID uuid.UUID       `gorm:"column:destination_id;type:uuid;not null;index"`
	Slug          string          `gorm:"column:slug;not null;uniqueIndex"`
	Name          string          `gorm:"column:name;not null"`
	Location      string          `gorm:"column:location;not null"`
	Description   string          `gorm:"column:description;not null"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Currency      string          `gorm:"column:currency;not null;default:'USD'"`
	DurationDays  *int            `gorm:"column:duration_days"`
	ImageURL      *string         `gorm:"column:image_url"`
	Tags          pq.StringArray  `gorm:"column:tags;type:text[]"`
	// No default tag: gorm omits zero-valued fields that carry one, so
	// Active=false inserts would persist the column default true.
	Active        bool            `gorm:"column:active;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
