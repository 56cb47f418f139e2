package reservations

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"venuehub/internal/availability"

	"github.com/google/uuid"
)

// Reservation is a committed booking. It is the durable record; the
// in-memory availability index is rebuilt from active reservations on
// startup. All money fields are minor currency units.
type Reservation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Reference string    `gorm:"uniqueIndex;not null" json:"reference"`

	VenueID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reservations_venue_date" json:"venue_id"`
	VenueName     string    `gorm:"not null" json:"venue_name"`
	Date          time.Time `gorm:"not null;index:idx_reservations_venue_date" json:"date"`
	StartHour     int       `gorm:"not null" json:"start_hour"`
	DurationHours int       `gorm:"not null" json:"duration_hours"`
	Attendees     int       `gorm:"not null" json:"attendees"`

	ContactName     string `gorm:"not null" json:"contact_name"`
	ContactEmail    string `gorm:"not null" json:"contact_email"`
	ContactPhone    string `gorm:"not null" json:"contact_phone"`
	SpecialRequests string `json:"special_requests"`

	HallCost     int64 `gorm:"not null" json:"hall_cost"`
	ServicesCost int64 `gorm:"not null" json:"services_cost"`
	TotalCost    int64 `gorm:"not null" json:"total_cost"`

	Status   Status               `gorm:"not null;index" json:"status"`
	Services []ReservationService `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationService is a line item snapshot of an add-on at booking time.
// Prices are copied so later catalog edits never change a committed total.
type ReservationService struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;not null;index" json:"reservation_id"`
	ServiceID     uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	Name          string    `gorm:"not null" json:"name"`
	Category      string    `gorm:"not null" json:"category"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"`
	Cost          int64     `gorm:"not null" json:"cost"`
}

// Interval reconstructs the booked window from the stored columns
func (r *Reservation) Interval() availability.Interval {
	return availability.Interval{
		Date:          availability.NormalizeDate(r.Date),
		StartHour:     r.StartHour,
		DurationHours: r.DurationHours,
	}
}

// generateReference builds a human-readable booking reference,
// e.g. RSV-20250615-KQWZPA.
func generateReference() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("RSV-%s-%s", timestamp, string(randomPart)), nil
}
