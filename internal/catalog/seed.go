package catalog

import "github.com/google/uuid"

// SeedVenues returns the stock hall catalog. Rates are minor currency units
// (cents) per hour.
func SeedVenues() []Venue {
	return []Venue{
		{
			ID:          uuid.New(),
			Name:        "Grand Ballroom",
			Description: "Our most elegant and spacious hall, perfect for weddings, galas, and large conferences.",
			Capacity:    500,
			HourlyRate:  150000,
			Location:    "Main Building, 1st Floor",
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Executive Conference Center",
			Description: "Professional setting for business meetings and conferences, equipped with modern technology.",
			Capacity:    150,
			HourlyRate:  80000,
			Location:    "Business Wing, 2nd Floor",
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Garden Pavilion",
			Description: "Open-air venue surrounded by lush gardens, for summer parties and outdoor weddings.",
			Capacity:    200,
			HourlyRate:  120000,
			Location:    "South Garden, Ground Level",
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Cultural Event Space",
			Description: "Versatile space designed for art exhibitions, cultural performances, and community events.",
			Capacity:    300,
			HourlyRate:  100000,
			Location:    "Cultural Wing, Ground Floor",
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Intimate Reception Hall",
			Description: "Cozy and elegant space for smaller gatherings, intimate weddings, and private parties.",
			Capacity:    80,
			HourlyRate:  60000,
			Location:    "West Wing, 1st Floor",
			Offered:     true,
		},
	}
}

// SeedServices returns the stock add-on catalog. Catering prices are per
// attendee, everything else flat (see Service.BillingMode).
func SeedServices() []Service {
	return []Service{
		{
			ID:          uuid.New(),
			Name:        "Basic Catering Package",
			Description: "Selection of appetizers, main course options, and desserts. Includes setup and service staff.",
			Category:    CategoryCatering,
			Price:       4500,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Premium Catering Package",
			Description: "Gourmet international cuisines, premium beverages, and dessert stations with chef stations.",
			Category:    CategoryCatering,
			Price:       7500,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Basic AV Package",
			Description: "Projector, screen, basic sound system, and microphone. Technical support on call.",
			Category:    CategoryEquipment,
			Price:       25000,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Premium AV Package",
			Description: "Professional-grade audio-visual equipment with a dedicated technician throughout the event.",
			Category:    CategoryEquipment,
			Price:       50000,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Basic Decoration Package",
			Description: "Standard table settings, chair covers, and minimal floral arrangements.",
			Category:    CategoryDecoration,
			Price:       30000,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Premium Decoration Package",
			Description: "Custom theme decorations, premium floral arrangements, and mood lighting.",
			Category:    CategoryDecoration,
			Price:       75000,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Photography Service",
			Description: "Professional photographer with edited digital photos delivered within one week.",
			Category:    CategoryAdditional,
			Price:       60000,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Valet Parking",
			Description: "Professional valet service with parking attendants and coordination.",
			Category:    CategoryAdditional,
			Price:       35000,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Security Personnel",
			Description: "Trained security staff. Minimum 4-hour booking.",
			Category:    CategoryAdditional,
			Price:       4500,
			Offered:     true,
		},
		{
			ID:          uuid.New(),
			Name:        "Event Coordinator",
			Description: "Professional coordinator overseeing the logistics of the event.",
			Category:    CategoryAdditional,
			Price:       50000,
			Offered:     true,
		},
	}
}

// NewSeededMemoryRepository returns an in-memory catalog preloaded with the
// stock halls and services.
func NewSeededMemoryRepository() *MemoryRepository {
	repo := NewMemoryRepository()
	for _, v := range SeedVenues() {
		repo.AddVenue(v)
	}
	for _, s := range SeedServices() {
		repo.AddService(s)
	}
	return repo
}
