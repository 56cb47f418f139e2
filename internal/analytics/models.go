package analytics

// Overview aggregates reservation metrics for the admin dashboard.
// Money values are minor currency units.
type Overview struct {
	TotalReservations     int            `json:"total_reservations"`
	PendingApprovals      int            `json:"pending_approvals"`
	ConfirmedReservations int            `json:"confirmed_reservations"`
	CancelledReservations int            `json:"cancelled_reservations"`
	TotalRevenue          int64          `json:"total_revenue"`
	AverageValue          int64          `json:"average_value"`
	CancellationRate      float64        `json:"cancellation_rate"`
	ByStatus              map[string]int `json:"by_status"`
}

// VenuePerformance ranks a venue by booking volume and revenue
type VenuePerformance struct {
	VenueID          string  `json:"venue_id"`
	VenueName        string  `json:"venue_name"`
	ReservationCount int     `json:"reservation_count"`
	Revenue          int64   `json:"revenue"`
	AvgDurationHours float64 `json:"avg_duration_hours"`
}

// DailyStats is one day's booking volume and revenue
type DailyStats struct {
	Date         string `json:"date"`
	Reservations int    `json:"reservations"`
	Revenue      int64  `json:"revenue"`
}

// ServicePopularity ranks an add-on by how often it is booked
type ServicePopularity struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	TimesBooked int    `json:"times_booked"`
	Revenue     int64  `json:"revenue"`
}

// Dashboard bundles everything the admin overview page renders
type Dashboard struct {
	Overview        Overview            `json:"overview"`
	TopVenues       []VenuePerformance  `json:"top_venues"`
	DailyTrends     []DailyStats        `json:"daily_trends"`
	PopularServices []ServicePopularity `json:"popular_services"`
}
