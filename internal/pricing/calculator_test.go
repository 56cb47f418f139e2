package pricing

import (
	"testing"

	"venuehub/internal/catalog"

	"github.com/google/uuid"
)

func testVenue(rate int64) *catalog.Venue {
	return &catalog.Venue{
		ID:         uuid.New(),
		Name:       "Test Hall",
		Capacity:   200,
		HourlyRate: rate,
		Offered:    true,
	}
}

func flatService(price int64) catalog.Service {
	return catalog.Service{
		ID:       uuid.New(),
		Name:     "AV Package",
		Category: catalog.CategoryEquipment,
		Price:    price,
		Offered:  true,
	}
}

func cateringService(price int64) catalog.Service {
	return catalog.Service{
		ID:       uuid.New(),
		Name:     "Catering Package",
		Category: catalog.CategoryCatering,
		Price:    price,
		Offered:  true,
	}
}

func TestQuoteHallOnly(t *testing.T) {
	got := Quote(testVenue(15000), 3, 50, nil)

	if got.HallCost != 45000 {
		t.Fatalf("HallCost = %d, want 45000", got.HallCost)
	}
	if got.ServicesCost != 0 {
		t.Fatalf("ServicesCost = %d, want 0", got.ServicesCost)
	}
	if got.Total != 45000 {
		t.Fatalf("Total = %d, want 45000", got.Total)
	}
}

func TestQuoteWithFlatService(t *testing.T) {
	got := Quote(testVenue(15000), 3, 50, []catalog.Service{flatService(500)})

	if got.Total != 45500 {
		t.Fatalf("Total = %d, want 45500", got.Total)
	}
	if got.ServicesCost != 500 {
		t.Fatalf("ServicesCost = %d, want 500", got.ServicesCost)
	}
}

func TestQuoteCateringScalesWithAttendees(t *testing.T) {
	svc := cateringService(45)

	small := Quote(testVenue(1000), 2, 10, []catalog.Service{svc})
	large := Quote(testVenue(1000), 2, 100, []catalog.Service{svc})

	if small.ServicesCost != 450 {
		t.Fatalf("ServicesCost for 10 attendees = %d, want 450", small.ServicesCost)
	}
	if large.ServicesCost != 4500 {
		t.Fatalf("ServicesCost for 100 attendees = %d, want 4500", large.ServicesCost)
	}
}

func TestQuoteHallCostScalesLinearlyWithDuration(t *testing.T) {
	venue := testVenue(800)

	one := Quote(venue, 1, 50, nil)
	for hours := 2; hours <= 12; hours++ {
		got := Quote(venue, hours, 50, nil)
		if got.HallCost != one.HallCost*int64(hours) {
			t.Fatalf("HallCost for %d hours = %d, want %d", hours, got.HallCost, one.HallCost*int64(hours))
		}
	}
}

func TestQuoteIsPure(t *testing.T) {
	venue := testVenue(1200)
	services := []catalog.Service{flatService(300), cateringService(75)}

	first := Quote(venue, 4, 60, services)
	second := Quote(venue, 4, 60, services)

	if first != second {
		t.Fatalf("Quote is not deterministic: %+v vs %+v", first, second)
	}
}

func TestQuoteMixedServices(t *testing.T) {
	venue := testVenue(1000)
	services := []catalog.Service{
		flatService(250),
		cateringService(45),
		flatService(600),
	}

	got := Quote(venue, 5, 80, services)

	wantServices := int64(250 + 45*80 + 600)
	if got.ServicesCost != wantServices {
		t.Fatalf("ServicesCost = %d, want %d", got.ServicesCost, wantServices)
	}
	if got.Total != 5000+wantServices {
		t.Fatalf("Total = %d, want %d", got.Total, 5000+wantServices)
	}
}
