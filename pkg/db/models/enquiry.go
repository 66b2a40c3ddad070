package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourbrand/tours-backend/pkg/enums"
)

// Enquiry is a captured customer lead. The message column stores the
// full formatted blob with the cart selection embedded; destination_id
// and activity_id hold the first referenced item of each kind so the
// dashboard can filter without parsing the blob.
type Enquiry struct {
	ID               uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SiteID           string              `gorm:"column:site_id;not null;index"`
	SourcePage       string              `gorm:"column:source_page;not null"`
	DestinationID    *uuid.UUID          `gorm:"column:destination_id;type:uuid;index"`
	ActivityID       *uuid.UUID          `gorm:"column:activity_id;type:uuid;index"`
	Name             string              `gorm:"column:name;not null"`
	Email            string              `gorm:"column:email;not null;index"`
	PhoneCountryCode string              `gorm:"column:phone_country_code;not null"`
	PhoneNumber      string              `gorm:"column:phone_number;not null"`
	Message          string              `gorm:"column:message;not null"`
	Status           enums.EnquiryStatus `gorm:"column:status;type:enquiry_status;not null;default:'new'"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime;index:idx_enquiries_created_at,sort:desc"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
