package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Service categories
const (
	CategoryCatering   = "Catering"
	CategoryEquipment  = "Equipment"
	CategoryDecoration = "Decoration"
	CategoryAdditional = "Additional Services"
)

// BillingMode describes how a service charge is applied
type BillingMode string

const (
	BillingFlat        BillingMode = "FLAT"
	BillingPerAttendee BillingMode = "PER_ATTENDEE"
)

// Venue is a bookable hall with a capacity and an hourly rate.
// Reference data: never mutated by the reservation core.
type Venue struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	HourlyRate  int64     `gorm:"not null" json:"hourly_rate"` // minor currency units
	Location    string    `json:"location"`
	Offered     bool      `gorm:"not null;default:true" json:"offered"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Service is an add-on (catering, AV, decoration, ...) with a unit price.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"not null;index" json:"category"`
	Price       int64     `gorm:"not null" json:"price"` // minor currency units
	Offered     bool      `gorm:"not null;default:true" json:"offered"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BillingMode is inferred from the category: catering is billed per attendee,
// everything else once per booking.
func (s Service) BillingMode() BillingMode {
	if s.Category == CategoryCatering {
		return BillingPerAttendee
	}
	return BillingFlat
}
