package pricing

import "venuehub/internal/catalog"

// Breakdown itemizes the cost of a booking in minor currency units
type Breakdown struct {
	HallCost     int64 `json:"hall_cost"`
	ServicesCost int64 `json:"services_cost"`
	Total        int64 `json:"total"`
}

// ServiceCost returns what a single add-on contributes for the given headcount.
// Per-attendee services (catering) scale with attendees, flat services do not.
func ServiceCost(service catalog.Service, attendees int) int64 {
	if service.BillingMode() == catalog.BillingPerAttendee {
		return service.Price * int64(attendees)
	}
	return service.Price
}

// Quote computes the cost breakdown for a venue booking. Pure function with
// no I/O, safe to recompute on every summary refresh. Hours are whole and
// there is no proration, rounding or tax handling.
func Quote(venue *catalog.Venue, durationHours, attendees int, services []catalog.Service) Breakdown {
	hallCost := venue.HourlyRate * int64(durationHours)

	var servicesCost int64
	for _, service := range services {
		servicesCost += ServiceCost(service, attendees)
	}

	return Breakdown{
		HallCost:     hallCost,
		ServicesCost: servicesCost,
		Total:        hallCost + servicesCost,
	}
}
